package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootValidate(t *testing.T) {
	tests := []struct {
		name    string
		root    Root
		wantErr bool
	}{
		{"valid", Root{Name: "t", IncomingDir: "/t/in", OutgoingDir: "/t/out", ErrorDir: "/t/err"}, false},
		{"missing name", Root{IncomingDir: "/t/in", OutgoingDir: "/t/out", ErrorDir: "/t/err"}, true},
		{"missing incoming", Root{Name: "t", OutgoingDir: "/t/out", ErrorDir: "/t/err"}, true},
		{"incoming equals outgoing", Root{Name: "t", IncomingDir: "/t/in", OutgoingDir: "/t/in/", ErrorDir: "/t/err"}, true},
		{"incoming equals error", Root{Name: "t", IncomingDir: "/t/in", OutgoingDir: "/t/out", ErrorDir: "/t/./in"}, true},
		{"outgoing may equal error", Root{Name: "t", IncomingDir: "/t/in", OutgoingDir: "/t/res", ErrorDir: "/t/res"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.root.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRoot)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRootDirFor(t *testing.T) {
	root := Root{IncomingDir: "/t/in", OutgoingDir: "/t/out", ErrorDir: "/t/err"}

	assert.Equal(t, "/t/out", root.DirFor(TargetOutgoing))
	assert.Equal(t, "/t/err", root.DirFor(TargetError))
	assert.Equal(t, "/t/err", root.DirFor(""))
	assert.Equal(t, []string{"/t/in", "/t/out", "/t/err"}, root.Dirs())
}
