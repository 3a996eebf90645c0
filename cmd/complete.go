package cmd

import (
	"slices"
	"strings"

	"github.com/etnz/kirana"
	"github.com/etnz/kirana/config"
	"github.com/etnz/kirana/docs"
	"github.com/etnz/kirana/notify"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests for the program name, and
// returns immediately when the program is not run for completion.
//
// It must be called before the flags are parsed.
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the command line for the shell completion.
func completion() *complete.Command {
	items := complete.PredictFunc(predictItems)
	topics := complete.PredictFunc(predictTopics)

	itemAndQuantity := &complete.Command{
		Flags: map[string]complete.Predictor{
			"i": items,
			"q": predict.Nothing,
		},
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"view": {},
			"sell": itemAndQuantity,
			"add":  itemAndQuantity,
			"threshold": {
				Flags: map[string]complete.Predictor{
					"i": items,
					"l": predict.Nothing,
				},
			},
			"alerts": {},
			"menu":   {},
			"fmt":    {},
			"topic":  {Args: topics, Flags: map[string]complete.Predictor{"l": predict.Nothing}},
		},
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.yaml"),
			"data-file": predict.Files("*"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"notify":    predict.Set{notify.ChannelDesktop, notify.ChannelLog, notify.ChannelNone, notify.ChannelDesktop + "," + notify.ChannelLog},
		},
	}
}

// predictItems suggests the item names of the configured inventory file.
func predictItems(prefix string) []string {
	path := *dataFile
	if path == "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			return nil
		}
		path = cfg.DataFile
	}
	inv, err := kirana.LoadInventory(path)
	if err != nil {
		return nil
	}
	var items []string
	for item := range inv.Items() {
		if strings.HasPrefix(item, prefix) {
			items = append(items, item)
		}
	}
	return items
}

func predictTopics(prefix string) []string {
	topics, err := docs.AllTopics()
	if err != nil {
		return nil
	}
	return slices.DeleteFunc(topics, func(t string) bool { return !strings.HasPrefix(t, prefix) })
}
