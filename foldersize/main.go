package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <dirname>\n", os.Args[0])
		os.Exit(1)
	}

	start := time.Now()
	size, err := NewWalker().FolderSize(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "foldersize:", err)
		os.Exit(1)
	}
	fmt.Printf("Size: %d, Elapsed time: %.2f seconds\n", size, time.Since(start).Seconds())
}
