package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `short:"u" required:"" help:"URL of the release notes page to scrape"`
	Months   int           `short:"m" default:"12" help:"Number of months to look back (default: 12)"`
	Output   string        `short:"o" default:"text" enum:"text,markdown,json,html" help:"Output format (default: text)"`
	File     string        `short:"f" help:"Output file path (if not specified, prints to stdout)"`
	Profiles string        `help:"YAML file with additional platform profiles"`
	Timeout  time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Verbose  bool          `short:"v" help:"Enable verbose output"`
}
