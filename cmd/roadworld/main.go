package main

import (
	"os"

	"github.com/ChicagoDave/roadworld/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roadworld",
		Short: "Procedural road world generator and traffic-light simulator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var asGeoJSON bool

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate the world and write it to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], asGeoJSON)
		},
	}

	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "write a GeoJSON FeatureCollection instead of the scene")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project and the world it generates",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func simulateCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Step the traffic lights on a virtual clock and print their states",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(args[0], ticks)
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 12, "number of ticks to simulate")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with live light streaming",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
