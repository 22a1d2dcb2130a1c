package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespacePrefix_StripPrefix(t *testing.T) {
	ns := NewNamespacePrefix("hed")

	tests := []struct {
		name string
		want string
	}{
		{"hed__Primary_Contact__c", "Primary_Contact__c"},
		{"HED__Primary_Contact__c", "Primary_Contact__c"},
		{"Primary_Contact__c", "Primary_Contact__c"},
		{"Name", "Name"},
		{"hed__", "hed__"},
		{"hedge__Foo__c", "hedge__Foo__c"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ns.StripPrefix(tt.name))
		})
	}
}

func TestNamespacePrefix_ZeroValue(t *testing.T) {
	var ns NamespacePrefix
	assert.Equal(t, "hed__Foo__c", ns.StripPrefix("hed__Foo__c"))
}

func TestNewNamespacePrefix_DefaultsToPackage(t *testing.T) {
	ns := NewNamespacePrefix("")
	assert.Equal(t, "Foo__c", ns.StripPrefix("hed__Foo__c"))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("yes"))
	assert.True(t, ToBool([]byte("1")))
	assert.True(t, ToBool(int64(1)))
	assert.False(t, ToBool(nil))
	assert.False(t, ToBool("off"))
	assert.False(t, ToBool(""))
}
