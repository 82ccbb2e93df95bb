// Comando report calcula as mesmas visões da API direto no terminal e
// exporta o relatório em planilha sem subir o servidor.
//
//	report stats
//	report predict --days 14
//	report top --limit 5
//	report export --out ./relatorios
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, defaultBuilder).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
