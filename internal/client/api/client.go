// Package api is the HTTP client for the CloudVault server. Every method
// maps to one API route and decodes the server's response envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID       int64  `json:"userId"`
	UserName string `json:"username"`
	Email    string `json:"email"`
}

type SavedFile struct {
	ID       int64  `json:"id"`
	FileLink string `json:"fileLink"`
	UserID   int64  `json:"userId"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope is the common response wrapper. The message field is a string for
// single errors and a list for validation errors, hence RawMessage.
type envelope struct {
	Status  bool            `json:"status"`
	Message json.RawMessage `json:"message"`
}

// apiError turns a non-2xx response body into a readable error.
func apiError(statusCode int, body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Message) > 0 {
		var msg string
		if err := json.Unmarshal(env.Message, &msg); err == nil {
			return fmt.Errorf("server: %s", msg)
		}
		var msgs []string
		if err := json.Unmarshal(env.Message, &msgs); err == nil {
			return fmt.Errorf("server: %s", strings.Join(msgs, "; "))
		}
	}
	return fmt.Errorf("server: unexpected status %d", statusCode)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, data)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	in := map[string]string{"username": username, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", in, nil)
}

// Login authenticates and returns the bearer token together with the
// account profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	in := map[string]string{"email": email, "password": password}

	var out struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
			Data  User   `json:"data"`
		} `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return "", nil, err
	}
	return out.Data.Token, &out.Data.Data, nil
}

// Upload sends the file as multipart form data and returns the public URL of
// the stored object.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/s3/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusCreated {
		return "", apiError(resp.StatusCode, body)
	}

	var out struct {
		Status bool   `json:"status"`
		URL    string `json:"url"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// Download fetches the raw bytes of a stored object by its storage key.
func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/s3/download/"+url.PathEscape(key), nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

// ListFiles returns the caller's file registry records.
func (c *Client) ListFiles(ctx context.Context) ([]SavedFile, error) {
	var out struct {
		Status bool        `json:"status"`
		Files  []SavedFile `json:"files"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/files/my", nil, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}

// DeleteFile removes both the registry record and the stored object.
func (c *Client) DeleteFile(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/s3/delete/"+strconv.FormatInt(id, 10), nil, nil)
}

// ListUsers returns other registered accounts, optionally filtered by a
// search term matching username or email.
func (c *Client) ListUsers(ctx context.Context, search string) ([]User, error) {
	path := "/api/user/get-all-users"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	var out struct {
		Status bool   `json:"status"`
		Users  []User `json:"users"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}
