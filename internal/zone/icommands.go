// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

package zone

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// ICommands is a Client backed by the icommands (iquest, irm), which
// take care of authentication and session handling themselves.
type ICommands struct{}

var _ Client = (*ICommands)(nil)

const noRowsFound = "CAT_NO_ROWS_FOUND"

func (c *ICommands) quest(format, query string) ([]string, error) {
	cmd := exec.Command("iquest", "--no-page", format, query)
	out, err := cmd.CombinedOutput()
	if bytes.Contains(out, []byte(noRowsFound)) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("iquest failed: %v: %s", err, bytes.TrimSpace(out))
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (c *ICommands) CollectionExists(path string) (bool, error) {
	rows, err := c.quest("%s",
		fmt.Sprintf("SELECT COLL_NAME WHERE COLL_NAME = '%s'", questEscape(path)))
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (c *ICommands) ListChildren(path string) ([]string, []string, error) {
	subs, err := c.quest("%s",
		fmt.Sprintf("SELECT COLL_NAME WHERE COLL_PARENT_NAME = '%s'", questEscape(path)))
	if err != nil {
		return nil, nil, err
	}

	collections := make([]string, 0, len(subs))
	for _, sub := range subs {
		// iquest returns full paths for collections
		collections = append(collections, sub[strings.LastIndex(sub, "/")+1:])
	}

	objects, err := c.quest("%s",
		fmt.Sprintf("SELECT DATA_NAME WHERE COLL_NAME = '%s'", questEscape(path)))
	if err != nil {
		return nil, nil, err
	}

	return collections, objects, nil
}

func (c *ICommands) DeleteCollection(path string, permanent bool) error {
	return c.irm(path, permanent, true)
}

func (c *ICommands) DeleteDataObject(path string, permanent bool) error {
	return c.irm(path, permanent, false)
}

func (c *ICommands) irm(path string, permanent, recursive bool) error {
	cmd := exec.Command("irm")
	if recursive {
		cmd.Args = append(cmd.Args, "-r")
	}
	if permanent {
		cmd.Args = append(cmd.Args, "-f")
	}
	cmd.Args = append(cmd.Args, path)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("irm failed: %v: %s", err, bytes.TrimSpace(out))
	}
	return nil
}

func (c *ICommands) FindDataObjectsByName(root, pattern string) ([]string, error) {
	root = strings.TrimSuffix(root, "/")

	nameCond := fmt.Sprintf("DATA_NAME = '%s'", questEscape(pattern))
	if strings.ContainsAny(pattern, "*?") {
		nameCond = fmt.Sprintf("DATA_NAME LIKE '%s'", wildcardToLike(pattern))
	}

	collConds := []string{
		fmt.Sprintf("COLL_NAME = '%s'", questEscape(root)),
		fmt.Sprintf("COLL_NAME LIKE '%s/%%'", questEscape(root)),
	}

	var paths []string
	for _, collCond := range collConds {
		rows, err := c.quest("%s/%s",
			fmt.Sprintf("SELECT COLL_NAME, DATA_NAME WHERE %s AND %s", collCond, nameCond))
		if err != nil {
			return nil, err
		}
		paths = append(paths, rows...)
	}

	sort.Strings(paths)
	return paths, nil
}

func (c *ICommands) GroupExists(name string) (bool, error) {
	rows, err := c.quest("%s",
		fmt.Sprintf("SELECT USER_GROUP_NAME WHERE USER_GROUP_NAME = '%s'", questEscape(name)))
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (c *ICommands) GroupAttribute(group, attribute string) (string, error) {
	rows, err := c.quest("%s", fmt.Sprintf(
		"SELECT META_USER_ATTR_VALUE WHERE USER_GROUP_NAME = '%s' AND META_USER_ATTR_NAME = '%s'",
		questEscape(group), questEscape(attribute)))
	if err != nil {
		return "", err
	}

	switch len(rows) {
	case 0:
		return "", fmt.Errorf("attribute %s not found on group %s", attribute, group)
	case 1:
		return rows[0], nil
	default:
		return "", fmt.Errorf("attribute %s has multiple values on group %s", attribute, group)
	}
}

func questEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// wildcardToLike converts a Unix-style wildcard pattern such as *.csv
// to the LIKE syntax the catalog expects, like %.csv.
func wildcardToLike(pattern string) string {
	r := strings.NewReplacer(`%`, `\%`, `_`, `\_`, `?`, `_`, `*`, `%`)
	return r.Replace(questEscape(pattern))
}
