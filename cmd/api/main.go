package main

import (
	"os"

	"finora/cmd"
	"finora/internal/logger"
)

func main() {
	log := logger.New()
	log.Infof("starting api, commit %s", os.Getenv("commit_hash"))

	deps, err := cmd.NewDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Close()

	err = deps.ApiHandler.StartApi(deps.Secrets.Port)
	if err != nil {
		log.Fatal(err)
	}
}
