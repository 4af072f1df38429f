package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hupe1980/agentmesh/agent"

	"deepagents_demo/internal/config"
	"deepagents_demo/internal/demo"
	"deepagents_demo/pkg/dial"
	"deepagents_demo/pkg/logging"
	"deepagents_demo/pkg/tools"
	"deepagents_demo/pkg/ui"
)

// Demo 1: a classic reason/act agent. One model-backed agent with a single
// search tool, looping reason -> act -> observe inside the agent library
// until it can answer.

const defaultTask = "Research the current state of quantum computing and " +
	"summarize the three most important recent developments."

const researchInstruction = `You are a research assistant working step by step.
Reason about what information you still need, call web_search to gather it,
read the results, and repeat until you can answer confidently. Finish with a
concise summary that names the sources you used.`

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

	console.Header("Demo 1: ReAct Agent")
	console.Successf("DIAL API environment configured")
	console.Infof("model: %s", cfg.ModelName)

	researcher := agent.NewModelAgent("ResearchAgent", client.Model(), func(o *agent.ModelAgentOptions) {
		o.Instruction = agent.NewInstructionFromText(researchInstruction)
		o.EnableStreaming = false
		o.AllowTransfer = false
	})
	searchClient := tools.NewSearchClient(tools.WithMaxResults(cfg.SearchMaxResults))
	researcher.RegisterTool(tools.NewWebSearchTool(searchClient))

	runner := demo.NewRunner(func(o *demo.Options) {
		o.Console = console
		o.Logger = log
	})
	runner.Register(researcher)

	answer, err := runner.Run(context.Background(), researcher.Name(), task)
	if err != nil {
		return err
	}

	console.Header("Final Answer")
	fmt.Println(answer)
	return nil
}
