package main

import "github.com/gnarkffi/gnb/cmd/gnb/internal"

func main() {
	internal.Execute()
}
