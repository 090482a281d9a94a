package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikedBy(t *testing.T) {
	p := Product{LikedBy: []string{"u1", "u2"}}

	assert.True(t, p.IsLikedBy("u1"))
	assert.False(t, p.IsLikedBy("u3"))
}

func TestIsLikedByAnonymousViewer(t *testing.T) {
	p := Product{LikedBy: []string{"u1"}}

	assert.False(t, p.IsLikedBy(""))
}

func TestIsLikedByNilSet(t *testing.T) {
	var p Product

	assert.False(t, p.IsLikedBy("u1"))
}
