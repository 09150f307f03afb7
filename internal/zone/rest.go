// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

package zone

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// RESTClient is a Client backed by the zone's HTTP API. Authenticate
// first to obtain the bearer token.
type RESTClient struct {
	BaseURL string // e.g. https://zone.example.org/api/v1
	Token   string
}

var _ Client = (*RESTClient)(nil)

// Authenticate exchanges a username and password for a bearer token.
func Authenticate(baseURL, username, password string) (string, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/authenticate", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(username, password)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("authentication failed: status %d", resp.StatusCode)
	}

	token, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(token)), nil
}

func (c *RESTClient) do(method, endpoint string, query url.Values, out interface{}) error {
	apiURL := c.BaseURL + endpoint
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, apiURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("bad status code %d from %s", resp.StatusCode, apiURL)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return err
		}
	}

	return nil
}

var errNotFound = fmt.Errorf("not found")

func (c *RESTClient) CollectionExists(path string) (bool, error) {
	err := c.do(http.MethodGet, "/collections", url.Values{"path": {path}}, nil)
	if err == errNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *RESTClient) ListChildren(path string) ([]string, []string, error) {
	var children struct {
		Collections []string `json:"collections"`
		DataObjects []string `json:"data_objects"`
	}

	err := c.do(http.MethodGet, "/collections/children", url.Values{"path": {path}}, &children)
	if err != nil {
		return nil, nil, err
	}

	return children.Collections, children.DataObjects, nil
}

func (c *RESTClient) DeleteCollection(path string, permanent bool) error {
	return c.do(http.MethodDelete, "/collections", url.Values{
		"path":      {path},
		"permanent": {strconv.FormatBool(permanent)},
	}, nil)
}

func (c *RESTClient) DeleteDataObject(path string, permanent bool) error {
	return c.do(http.MethodDelete, "/data-objects", url.Values{
		"path":      {path},
		"permanent": {strconv.FormatBool(permanent)},
	}, nil)
}

func (c *RESTClient) FindDataObjectsByName(root, pattern string) ([]string, error) {
	var found struct {
		Paths []string `json:"paths"`
	}

	err := c.do(http.MethodGet, "/data-objects/search", url.Values{
		"root": {strings.TrimSuffix(root, "/")},
		"name": {pattern},
	}, &found)
	if err != nil {
		return nil, err
	}

	sort.Strings(found.Paths)
	return found.Paths, nil
}

func (c *RESTClient) GroupExists(name string) (bool, error) {
	err := c.do(http.MethodGet, "/groups/"+url.PathEscape(name), nil, nil)
	if err == errNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *RESTClient) GroupAttribute(group, attribute string) (string, error) {
	var meta struct {
		Value string `json:"value"`
	}

	err := c.do(http.MethodGet, "/groups/"+url.PathEscape(group)+"/metadata",
		url.Values{"attribute": {attribute}}, &meta)
	if err == errNotFound {
		return "", fmt.Errorf("attribute %s not found on group %s", attribute, group)
	}
	if err != nil {
		return "", err
	}

	return meta.Value, nil
}
