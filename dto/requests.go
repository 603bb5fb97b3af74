package dto

import (
	"fmt"
)

// Request payloads. Payload validation runs before any repository call and
// failures are reported with the offending field; everything past validation
// is the handler's domain logic.

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// AvatarRequest carries an upload. File holds the raw bytes of the uploaded
// file (a multipart part, or a string field in a JSON body); handlers encode
// it to base64 before storage.
type AvatarRequest struct {
	Username string `json:"username"`
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (r *AvatarRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

type PostRequest struct {
	User     string `json:"user"`
	Channel  string `json:"channel"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	GiphyURL string `json:"giphyUrl"`
}

type CommentRequest struct {
	User     string `json:"user"`
	Post     string `json:"post"`
	Content  string `json:"content"`
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	GiphyURL string `json:"giphyUrl"`
}

// ReactionRequest targets a post or a comment. A reaction with no target at
// all is rejected here; one naming both is stored as sent.
type ReactionRequest struct {
	User    string `json:"user"`
	Post    string `json:"post"`
	Comment string `json:"comment"`
}

func (r *ReactionRequest) Validate() error {
	if r.User == "" {
		return fmt.Errorf("user is required")
	}
	if r.Post == "" && r.Comment == "" {
		return fmt.Errorf("post or comment is required")
	}
	return nil
}

type ChannelRequest struct {
	Name string `json:"name"`
}

func (r *ChannelRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
