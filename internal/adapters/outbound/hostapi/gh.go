// Package hostapi implements domain.HostClient on top of the gh CLI, the
// same tool the pipeline itself shells out to.
package hostapi

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"
)

const tool = "gh"

// Client queries the hosting API through gh, so the tooling check and the
// mirror check exercise the exact binary and credentials the pipeline uses.
type Client struct {
	dir string
}

func New(dir string) *Client {
	return &Client{dir: dir}
}

func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command(tool, args...)
	cmd.Dir = c.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", tool, strings.Join(args, " "), err,
			strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (c *Client) ToolPath() (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", tool, err)
	}
	return path, nil
}

func (c *Client) AuthLogin() (string, error) {
	out, err := c.run("api", "user")
	if err != nil {
		return "", err
	}
	login := gjson.Get(out, "login").String()
	if login == "" {
		return "", fmt.Errorf("%s api user returned no login", tool)
	}
	return login, nil
}

func (c *Client) RepoExists(slug string) (bool, error) {
	out, err := c.run("api", "repos/"+slug)
	if err != nil {
		if strings.Contains(err.Error(), "HTTP 404") || strings.Contains(err.Error(), "Not Found") {
			return false, nil
		}
		return false, err
	}
	return gjson.Get(out, "full_name").Exists(), nil
}

func (c *Client) TopLevelFiles(slug string) ([]string, error) {
	out, err := c.run("api", "repos/"+slug+"/contents/")
	if err != nil {
		return nil, err
	}
	listing := gjson.Parse(out)
	if !listing.IsArray() {
		return nil, fmt.Errorf("unexpected contents listing for %s", slug)
	}

	var names []string
	for _, entry := range listing.Array() {
		if entry.Get("type").String() == "file" {
			names = append(names, entry.Get("name").String())
		}
	}
	return names, nil
}
