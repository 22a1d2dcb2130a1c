package utils

import (
	"strings"

	"github.com/ryanguest/HEDAP/pkg/constants"
)

// NamespacePrefix strips a managed package namespace ("hed__") from names.
// The zero value strips nothing.
type NamespacePrefix struct {
	Namespace string
}

// NewNamespacePrefix returns a NamespacePrefix for ns, defaulting to the package namespace
func NewNamespacePrefix(ns string) NamespacePrefix {
	if ns == "" {
		ns = constants.DefaultNamespace
	}
	return NamespacePrefix{Namespace: ns}
}

// StripPrefix removes the namespace prefix from name, matching case-insensitively.
// Names without the prefix are returned unchanged.
func (n NamespacePrefix) StripPrefix(name string) string {
	if n.Namespace == "" {
		return name
	}
	prefix := n.Namespace + constants.NamespaceSeparator
	if len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) {
		return name[len(prefix):]
	}
	return name
}
