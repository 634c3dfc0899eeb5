// Package xmlutils provides the XPath helpers used to read XML statements.
package xmlutils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath) // #nosec G304 -- reading user-selected statement files
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParseXML(file)
}

// ParseXML parses XML from r and returns the root node.
func ParseXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}
	return root, nil
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// Nodes returns the nodes matched by xpath under root.
func Nodes(root *xmlpath.Node, xpath string) ([]*xmlpath.Node, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var nodes []*xmlpath.Node
	iter := path.Iter(root)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes, nil
}

// Exists reports whether xpath matches anything under root.
func Exists(root *xmlpath.Node, xpath string) (bool, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false, fmt.Errorf("failed to compile XPath: %w", err)
	}
	return path.Exists(root), nil
}

// FirstValue returns the cleaned text of the first match of xpath, or "".
func FirstValue(node *xmlpath.Node, xpath string) (string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return "", fmt.Errorf("failed to compile XPath: %w", err)
	}
	value, ok := path.String(node)
	if !ok {
		return "", nil
	}
	return CleanText(value), nil
}

// CleanText collapses runs of whitespace, including newlines, to one space.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
