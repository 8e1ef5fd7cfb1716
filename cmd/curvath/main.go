// Command curvath ingests tabular measurement files and emits simplified
// curves, statistics and standardized report payloads.
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("fatal error running curvath")
	}
}
