package store

import (
	"fmt"
	"strings"
)

const frontmatterDelim = "---"

// ParseFrontmatter splits a task file into its YAML frontmatter and
// markdown body. Content without a leading delimiter is all body. A file
// that opens a frontmatter block but never closes it is an error; the
// loader skips such files instead of guessing.
func ParseFrontmatter(content string) (frontmatter string, body string, err error) {
	if !strings.HasPrefix(content, frontmatterDelim+"\n") {
		return "", content, nil
	}

	rest := content[len(frontmatterDelim)+1:]

	// empty frontmatter block
	if strings.HasPrefix(rest, frontmatterDelim+"\n") {
		return "", rest[len(frontmatterDelim)+1:], nil
	}
	if rest == frontmatterDelim {
		return "", "", nil
	}

	idx := strings.Index(rest, "\n"+frontmatterDelim)
	if idx == -1 {
		return "", "", fmt.Errorf("frontmatter missing closing %q delimiter", frontmatterDelim)
	}

	frontmatter = rest[:idx]
	body = rest[idx+1+len(frontmatterDelim):]
	// drop the newline that terminated the closing delimiter line
	body = strings.TrimPrefix(body, "\n")
	return frontmatter, body, nil
}
