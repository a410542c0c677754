package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	_ "net/http/pprof"

	_ "go.uber.org/automaxprocs"

	"github.com/huffpack/huffpack/internal/bootstrap"
)

const usage = `usage: huffpack encode <input_file> <output_file>
       huffpack decode <input_file> <output_file>
       huffpack serve`

func main() {
	if os.Getenv("PPROF") == "true" {
		go func() {
			log.Println("listen and serve pprof: http://0.0.0.0:6060")
			log.Println(http.ListenAndServe("0.0.0.0:6060", nil))
		}()
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "serve":
		bootstrap.StartServer()
	case "encode", "decode":
		if len(os.Args) != 4 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}

		var err error
		if os.Args[1] == "encode" {
			err = bootstrap.RunEncode(os.Args[2], os.Args[3])
		} else {
			err = bootstrap.RunDecode(os.Args[2], os.Args[3])
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "huffpack:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
