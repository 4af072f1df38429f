// Package demo holds the driver plumbing shared by both demo binaries:
// mesh construction, session identity, the event drain loop, and access to
// the virtual workspace after a run.
package demo

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hupe1980/agentmesh"
	"github.com/hupe1980/agentmesh/artifact"
	"github.com/hupe1980/agentmesh/core"

	"deepagents_demo/pkg/logging"
	"deepagents_demo/pkg/ui"
)

const defaultRunTimeout = 3 * time.Minute

// Options configure a Runner.
type Options struct {
	Timeout time.Duration
	Console *ui.Console
	Logger  *logging.Logger
}

// Runner wraps one agent library instance with a fresh session.
type Runner struct {
	mesh      *agentmesh.AgentMesh
	artifacts core.ArtifactStore
	console   *ui.Console
	log       *logging.Logger
	sessionID string
	timeout   time.Duration
}

// NewRunner builds the mesh with in-memory stores and a fresh session ID.
// The artifact store is kept so callers can inspect the virtual workspace
// after a run completes.
func NewRunner(optFns ...func(o *Options)) *Runner {
	opts := Options{
		Timeout: defaultRunTimeout,
		Console: ui.NewConsole(os.Stdout),
		Logger:  logging.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	artifacts := artifact.NewInMemoryStore()
	mesh := agentmesh.New(func(o *agentmesh.Options) {
		o.Logger = opts.Logger.Mesh()
		o.ArtifactService = artifacts
	})

	return &Runner{
		mesh:      mesh,
		artifacts: artifacts,
		console:   opts.Console,
		log:       opts.Logger,
		sessionID: uuid.NewString(),
		timeout:   opts.Timeout,
	}
}

// Register adds agents to the mesh.
func (r *Runner) Register(agents ...core.Agent) {
	for _, a := range agents {
		r.mesh.RegisterAgent(a)
	}
}

// SessionID returns the session identifier for this run.
func (r *Runner) SessionID() string { return r.sessionID }

// Run invokes the named agent once with the task and drains the event and
// error channels, rendering progress as it arrives. It returns the last text
// the agents produced, which is the final answer for single-turn demos.
func (r *Runner) Run(ctx context.Context, agentName, task string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.log.Info("invoking agent", "agent", agentName, "session", r.sessionID)

	_, eventsCh, errorsCh, err := r.mesh.Invoke(ctx, r.sessionID, agentName, NewUserText(task))
	if err != nil {
		return "", errors.Wrapf(err, "invoke %s", agentName)
	}

	var lastText string
	var runErr error
	for eventsCh != nil || errorsCh != nil {
		select {
		case ev, ok := <-eventsCh:
			if !ok {
				eventsCh = nil
				continue
			}
			if ev.Partial != nil && *ev.Partial {
				continue
			}
			r.renderEvent(ev)
			if txt := eventText(ev); txt != "" {
				lastText = txt
			}
		case err, ok := <-errorsCh:
			if !ok {
				errorsCh = nil
				continue
			}
			if err != nil {
				runErr = err
			}
		}
	}

	if runErr != nil {
		return lastText, errors.Wrapf(runErr, "agent %s failed", agentName)
	}
	return lastText, nil
}

// Files returns the virtual workspace contents for this session.
func (r *Runner) Files() (map[string]string, error) {
	names, err := r.artifacts.List(r.sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "list workspace")
	}
	files := make(map[string]string, len(names))
	for _, name := range names {
		data, err := r.artifacts.Get(r.sessionID, name)
		if err != nil {
			return nil, errors.Wrapf(err, "read workspace file %s", name)
		}
		files[name] = string(data)
	}
	return files, nil
}

func (r *Runner) renderEvent(ev core.Event) {
	if ev.Content == nil {
		return
	}
	for _, p := range ev.Content.Parts {
		switch part := p.(type) {
		case core.TextPart:
			if strings.TrimSpace(part.Text) != "" {
				r.console.AgentSays(ev.Author, part.Text)
			}
		case core.FunctionCallPart:
			r.console.Dimf("→ %s calls %s(%s)", ev.Author, part.FunctionCall.Name, truncateArgs(part.FunctionCall.Arguments))
		case core.FunctionResponsePart:
			if part.FunctionResponse.Error != "" {
				r.console.Dimf("← %s failed: %s", part.FunctionResponse.Name, part.FunctionResponse.Error)
			} else {
				r.console.Dimf("← %s returned", part.FunctionResponse.Name)
			}
		}
	}
}

// eventText concatenates the text parts of an event.
func eventText(ev core.Event) string {
	if ev.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range ev.Content.Parts {
		if tp, ok := p.(core.TextPart); ok {
			sb.WriteString(tp.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// NewUserText wraps a prompt string as user content.
func NewUserText(text string) core.Content {
	return core.Content{Role: "user", Parts: []core.Part{core.TextPart{Text: text}}}
}

func truncateArgs(args string) string {
	const max = 80
	args = strings.ReplaceAll(args, "\n", " ")
	if len(args) > max {
		return args[:max] + "…"
	}
	return args
}
