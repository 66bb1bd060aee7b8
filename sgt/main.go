package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/sellergrid/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion declares the shell completion tree. Complete() exits the
// process when invoked by the shell completion machinery.
func completion() {
	fields := map[string]complete.Predictor{
		"desc":     predict.Nothing,
		"size":     predict.Nothing,
		"gender":   predict.Set{"unmarked", "boy", "girl"},
		"price":    predict.Nothing,
		"donation": predict.Nothing,
	}
	root := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":   predict.Files("*.json"),
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"seller": {Flags: map[string]complete.Predictor{
				"id":       predict.Nothing,
				"donation": predict.Nothing,
				"gender":   predict.Set{"unmarked", "boy", "girl"},
				"size":     predict.Nothing,
			}},
			"add": {Flags: fields},
			"set": {Flags: fields},
			"select": {Flags: map[string]complete.Predictor{
				"i":        predict.Nothing,
				"deselect": predict.Nothing,
				"all":      predict.Nothing,
				"none":     predict.Nothing,
			}},
			"remove": {Flags: map[string]complete.Predictor{
				"i":        predict.Nothing,
				"selected": predict.Nothing,
				"y":        predict.Nothing,
			}},
			"clear":  {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"list":   {Flags: map[string]complete.Predictor{"filter": predict.Nothing}},
			"totals": {Flags: map[string]complete.Predictor{"filter": predict.Nothing}},
			"query":  {},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "csv", "xlsx"},
				"o":      predict.Files("*"),
			}},
			"import": {Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}},
			"print": {Flags: map[string]complete.Predictor{
				"grid": predict.Nothing,
				"y":    predict.Nothing,
				"o":    predict.Files("*"),
			}},
		},
	}
	root.Complete("sgt")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
