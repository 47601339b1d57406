package plugin

import (
	"context"

	"github.com/go-mclib/guikit/pkg/gui"
)

// Module is a pluggable feature of a plugin.
type Module interface {
	// Name returns a unique key for this module (e.g. "prompt", "lootables").
	Name() string
	// Init is called once when the module is registered.
	// Store the *Plugin reference for later use.
	Init(p *Plugin)
}

// Enabler is optionally implemented by modules that need the detected
// capabilities before they can start.
type Enabler interface {
	Enable(ctx context.Context) error
}

// Disabler is optionally implemented by modules holding resources.
type Disabler interface {
	Disable(ctx context.Context) error
}

// ChatHandler is optionally implemented by modules that read player chat.
// Returning true consumes the message.
type ChatHandler interface {
	HandleChat(ctx context.Context, v gui.Viewer, msg string) bool
}

// Command handles "/name args...". args excludes the name.
type Command func(ctx context.Context, v gui.Viewer, args []string) error
