package main

import "github.com/alainchaple/formulario-publicaciones-ua/cmd"

func main() {
	cmd.Execute()
}
