// Builds a list from --values, applies the operations given as arguments and logs every result.
//
//	dlist --values=1,2,5,4 index_of:5 remove_at:1 insert:1:2 contains:5

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/nobletooth/dlist/pkg/utils"
)

var (
	printVersion  = flag.Bool("print_version", false, "Print the version and exit.")
	initialValues = flag.String("values", "", "Comma separated integers the list starts with.")
)

func main() {
	flag.Parse()
	utils.InitLogging()

	if *printVersion {
		slog.Info("dlist build info.", "version", utils.Version, "commit", utils.Commit, "build", utils.BuildTime)
		return
	}

	l, err := parseValues(*initialValues)
	if err != nil {
		slog.Error("Invalid --values flag.", "error", err)
		os.Exit(1)
	}

	exitCode := 0
	if err := runScript(l, flag.Args()); err != nil {
		slog.Error("Script stopped.", "error", err)
		exitCode = 1
	}
	slog.Info("Final list.", "count", l.Len(), "values", l.String(), "uptime", utils.Uptime())
	os.Exit(exitCode)
}
