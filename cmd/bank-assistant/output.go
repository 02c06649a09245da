package main

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aescanero/dago-bank-assistant/internal/agent"
	"github.com/aescanero/dago-bank-assistant/internal/router"
)

const separator = "────────────────────────────────────────────────────────────"

func printResult(w io.Writer, query string, result agent.QueryResult, verbose bool) {
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Consulta: %s\n", query)
	fmt.Fprintf(w, "Tipo: %s\n", strings.ToUpper(result.QueryType))
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, result.Response)

	if result.QueryType == string(router.Knowledge) && len(result.Sources) > 0 {
		fmt.Fprintln(w, "\nFuentes:")
		for i, doc := range result.Sources {
			fmt.Fprintf(w, "  %d. %s\n", i+1, path.Base(doc.Source))
		}
	}

	if verbose && result.Routing != nil {
		fmt.Fprintf(w, "\n[ruta: %s, %s]\n", result.Routing.PathTaken, result.Routing.Reasoning)
	}
	fmt.Fprintln(w, separator)
}

func printStats(w io.Writer, s agent.Snapshot) {
	fmt.Fprintln(w, "\nEstadísticas")
	fmt.Fprintf(w, "  Total de consultas:   %d\n", s.TotalQueries)
	fmt.Fprintf(w, "  Consultas de balance: %d\n", s.BalanceQueries)
	fmt.Fprintf(w, "  Consultas de conocimiento: %d\n", s.KnowledgeQueries)
	fmt.Fprintf(w, "  Consultas generales:  %d\n", s.GeneralQueries)
	fmt.Fprintf(w, "  Errores:              %d\n", s.Errors)
	fmt.Fprintf(w, "  Tasa de éxito:        %.1f%%\n", s.SuccessRate)
}

const helpText = `Comandos disponibles:
  /help   muestra esta ayuda
  /stats  muestra las estadísticas de uso
  /clear  borra el historial y reinicia las estadísticas
  /exit   sale del asistente (también /quit)

Ejemplos de consultas:
  ¿Cuál es el balance de la cédula V-12345678?
  ¿Cómo abrir una cuenta de ahorros?
  ¿Qué requisitos necesito para una tarjeta de crédito?`
