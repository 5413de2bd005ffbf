package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/chriso345/methodstruct"
)

type Transfer struct {
	From   string
	To     string
	Amount int `field:"cents"`
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.AllowDebug())

	base, err := methodstruct.FromStruct(Transfer{}, methodstruct.WithMethodName("execute"), methodstruct.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error defining struct:", err)
		os.Exit(1)
	}

	transfer := base.Extend("Transfer", methodstruct.Methods{
		"execute": func(self *methodstruct.Instance) (any, error) {
			var t Transfer
			if err := self.Decode(&t); err != nil {
				return nil, err
			}
			return fmt.Sprintf("%s -> %s: %d.%02d", t.From, t.To, t.Amount/100, t.Amount%100), nil
		},
	})

	for _, args := range [][]any{
		{"alice", "bob", 1250},
		{methodstruct.Args{"from": "bob", "to": "carol", "cents": 99}},
		{methodstruct.Args{"from": "carol", "to": "dave"}},
	} {
		out, err := transfer.Invoke("execute", args...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Println(out)
	}
}
