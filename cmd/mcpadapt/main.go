// Command mcpadapt is a small debugging CLI for MCP servers: it loads a
// server's tool catalog through the adapter and can invoke a single tool.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bitop-dev/mcpadapt"
	"github.com/bitop-dev/mcpadapt/mcp"
)

var (
	configPath string
	serverName string
	lenient    bool
	verbose    bool
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "mcpadapt",
		Short:         "Inspect and invoke MCP server tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "servers.yaml", "server catalog file")
	root.PersistentFlags().StringVarP(&serverName, "server", "s", "", "server name from the catalog")
	root.PersistentFlags().BoolVar(&lenient, "lenient", false, "skip tools that fail to load instead of aborting")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log tool calls")

	root.AddCommand(toolsCmd(), callCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools a server advertises",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tools, closeConn, err := loadTools(ctx)
			if err != nil {
				return err
			}
			defer closeConn()
			for _, t := range tools {
				fmt.Printf("%s\t%s\n", t.Name(), t.Description())
			}
			return nil
		},
	}
}

func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-args]",
		Short: "Invoke one tool and print its converted output",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tools, closeConn, err := loadTools(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			var input json.RawMessage
			if len(args) == 2 {
				input = json.RawMessage(args[1])
			}
			for _, t := range tools {
				if t.Name() != args[0] {
					continue
				}
				out, err := t.Invoke(ctx, input)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(mcpadapt.ContentAndArtifact{
					Content:   out.Content,
					Artifacts: out.Artifacts,
				})
			}
			return fmt.Errorf("tool %q not found on server %q", args[0], serverName)
		},
	}
}

func loadTools(ctx context.Context) ([]*mcpadapt.StructuredTool, func(), error) {
	if serverName == "" {
		return nil, nil, fmt.Errorf("--server is required")
	}
	file, err := mcp.LoadServersFile(configPath)
	if err != nil {
		return nil, nil, err
	}
	cfg, ok := file.Servers[serverName]
	if !ok {
		return nil, nil, fmt.Errorf("server %q not declared in %s", serverName, configPath)
	}
	transport, err := cfg.NewTransport()
	if err != nil {
		return nil, nil, err
	}
	client, err := mcp.NewClient(mcp.ClientOptions{Transport: transport})
	if err != nil {
		return nil, nil, err
	}
	if _, err := client.Initialize(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	log := mcpadapt.NopLogger()
	if verbose {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		log = mcpadapt.NewLogrusLogger(l)
	}
	policy := mcpadapt.PolicyStrict
	if lenient {
		policy = mcpadapt.PolicyLenient
	}

	tools, err := mcpadapt.LoadTools(ctx, serverName, client, &mcpadapt.LoadOptions{
		Policy: policy,
		Logger: log,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return tools, func() { _ = client.Close() }, nil
}
