package main

import (
	"github.com/wal-g/pitr-resolver/cmd/pitr"
)

func main() {
	pitr.Execute()
}
