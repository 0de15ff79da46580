package main

import (
	"github.com/martijnjanssen/stocktable/cmd"
)

func main() {
	cmd.Execute()
}
