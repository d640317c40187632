package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qnkhuat/tetroterm/pkg"
	"github.com/qnkhuat/tetroterm/pkg/gui"
	"github.com/qnkhuat/tetroterm/pkg/tetromino"
	"golang.org/x/term"
)

const defaultColumns = 7

var (
	done = make(chan bool)
)

func main() {
	logPath := flag.String("log", "./viewer.log", "path to log file")
	seed := flag.Int64("seed", 0, "bag seed, 0 picks one from the clock")
	themeName := flag.String("theme", "basic", "theme name")
	themesPath := flag.String("themes", "", "path to a YAML file of extra themes")
	printPieces := flag.Bool("print", false, "print the pieces and exit")
	dumpJSON := flag.Bool("json", false, "write every piece in every orientation as JSON lines and exit")
	pieceList := flag.String("piece", "", "comma separated piece letters for -print and -json, default all")
	flag.Parse()

	types, err := parsePieceTypes(*pieceList)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpJSON {
		if err := pkg.WriteSnapshots(os.Stdout, types); err != nil {
			log.Fatalf("failed to write snapshots: %s", err)
		}
		return
	}

	if *printPieces {
		var pieces []*tetromino.Piece
		for _, t := range types {
			p, _ := tetromino.NewPiece(t)
			pieces = append(pieces, p)
		}
		if err := pkg.PrintPieces(os.Stdout, pieces, columns()); err != nil {
			log.Fatalf("failed to print pieces: %s", err)
		}
		return
	}

	if !pkg.IsTerminal(os.Stdout) {
		log.Fatal("failed to start tetroterm: non-interactive terminals are not supported")
	}

	var themes []gui.ThemeHex
	if *themesPath != "" {
		themes, err = gui.LoadThemes(*themesPath)
		if err != nil {
			log.Fatalf("failed to load themes: %s", err)
		}
	}
	theme, err := gui.ImportThemes(*themeName, themes)
	if err != nil {
		log.Fatal(err)
	}

	pkg.InitLog(*logPath, "VIEWER: ")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("New viewer, seed %d, theme %s", *seed, theme.Name)

	v := gui.NewViewer(theme, *seed)
	go func() {
		if err := v.Run(); err != nil {
			log.Printf("failed to run application: %s", err)
		}
		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		v.App.Stop()
	}()

	<-done
}

func parsePieceTypes(list string) ([]tetromino.PieceType, error) {
	if strings.TrimSpace(list) == "" {
		return tetromino.PieceTypes(), nil
	}

	var types []tetromino.PieceType
	for _, name := range strings.Split(list, ",") {
		t, err := tetromino.ParsePieceType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// columns fits as many pieces per row as the terminal allows
func columns() int {
	if !pkg.IsTerminal(os.Stdout) {
		return defaultColumns
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < pkg.PrintSlot {
		return defaultColumns
	}
	return width / pkg.PrintSlot
}
