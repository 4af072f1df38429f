package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hupe1980/agentmesh/agent"
	"github.com/hupe1980/agentmesh/core"

	"deepagents_demo/internal/config"
	"deepagents_demo/internal/demo"
	"deepagents_demo/pkg/dial"
	"deepagents_demo/pkg/logging"
	"deepagents_demo/pkg/tools"
	"deepagents_demo/pkg/ui"
)

// Demo 2: a deep agent. The coordinator plans with write_todos, keeps shared
// notes in a session-scoped virtual filesystem, sees its own plan re-injected
// into the instruction on every model turn, and delegates to specialist
// sub-agents. All four pillars live in the agent library; this driver only
// wires them together.

const defaultTask = "Prepare a short report on how large language model " +
	"agents are used in software engineering. Plan first, research with the " +
	"sub-agent, keep notes in files, then have the writer produce report.md."

const coordinatorInstruction = `You coordinate a small team to complete the task.
Work deliberately:
1. Call write_todos to lay out a plan before doing anything else.
2. Transfer research work to Researcher and writing work to Writer.
3. Keep shared context in workspace files (write_file / read_file / ls).
4. Update the plan with write_todos as steps complete.
When every step is done, reply with a short completion summary.`

const researcherInstruction = `You are the research specialist. Use web_search
to gather facts for the task you were given, then store your findings in a
workspace file named notes.md using write_file. Reply with a one-line summary
of what you stored.`

const writerInstruction = `You are the writing specialist. Read the workspace
files with ls and read_file, then write the final deliverable to report.md
using write_file. Reply with a one-line summary of what you wrote.`

func main() {
	var task, envFile string
	var quiet bool
	flag.StringVar(&task, "task", defaultTask, "task prompt for the agent")
	flag.StringVar(&envFile, "env", ".env", "path to the .env file")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress output")
	flag.Parse()

	console := ui.NewConsole(os.Stdout)
	console.Quiet(quiet)

	if err := run(console, task, envFile); err != nil {
		console.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(console *ui.Console, task, envFile string) error {
	if err := config.LoadDotenv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	client, err := dial.New(cfg)
	if err != nil {
		return err
	}

	console.Header("Demo 2: Deep Agent")
	console.Successf("DIAL API environment configured")
	console.Infof("model: %s", cfg.ModelName)

	coordinator, err := buildDeepAgent(client, cfg)
	if err != nil {
		return err
	}

	runner := demo.NewRunner(func(o *demo.Options) {
		o.Console = console
		o.Logger = log
	})
	runner.Register(coordinator)

	answer, err := runner.Run(context.Background(), coordinator.Name(), task)
	if err != nil {
		return err
	}

	console.Header("Final Answer")
	fmt.Println(answer)

	files, err := runner.Files()
	if err != nil {
		return err
	}
	console.Header("Virtual File System")
	console.FileTree(files)
	return nil
}

// buildDeepAgent assembles the coordinator and its specialist sub-agents.
func buildDeepAgent(client *dial.Client, cfg config.Config) (*agent.ModelAgent, error) {
	model := client.Model()
	searchClient := tools.NewSearchClient(tools.WithMaxResults(cfg.SearchMaxResults))

	researcher := agent.NewModelAgent("Researcher", model, func(o *agent.ModelAgentOptions) {
		o.Instruction = agent.NewInstructionFromText(researcherInstruction)
		o.EnableStreaming = false
	})
	researcher.SetDescription("Gathers information from the web and stores findings in workspace files.")
	researcher.RegisterTools(
		tools.NewWebSearchTool(searchClient),
		tools.NewWriteFileTool(),
		tools.NewReadFileTool(),
	)

	writer := agent.NewModelAgent("Writer", model, func(o *agent.ModelAgentOptions) {
		o.Instruction = agent.NewInstructionFromText(writerInstruction)
		o.EnableStreaming = false
	})
	writer.SetDescription("Turns workspace notes into the final deliverable.")
	writer.RegisterTools(
		tools.NewListFilesTool(),
		tools.NewReadFileTool(),
		tools.NewWriteFileTool(),
	)

	coordinator := agent.NewModelAgent("DeepAgent", model, func(o *agent.ModelAgentOptions) {
		// The instruction is rebuilt on every model turn so the current plan
		// is always visible to the coordinator.
		o.Instruction = agent.NewInstructionFromFunc(func(rc *core.RunContext) (string, error) {
			instruction := coordinatorInstruction
			if plan := tools.PlanFromRunContext(rc); plan != "" {
				instruction += "\n\n" + plan
			}
			return instruction, nil
		})
		o.EnableStreaming = false
		o.AllowTransfer = true
	})
	coordinator.RegisterTools(
		tools.NewWriteTodosTool(),
		tools.NewWriteFileTool(),
		tools.NewReadFileTool(),
		tools.NewListFilesTool(),
	)

	if err := coordinator.SetSubAgents(researcher, writer); err != nil {
		return nil, err
	}
	return coordinator, nil
}
