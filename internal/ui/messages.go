package ui

import "github.com/renato0307/shellbridge/internal/domain"

// frameTickMsg drives the per-frame drain of the output channel
type frameTickMsg struct{}

// disconnectedMsg reports that an explicit disconnect finished
type disconnectedMsg struct{}

// connectRequestMsg asks the model to start a connection attempt
type connectRequestMsg struct {
	credential domain.Credential
	target     domain.Target
}
