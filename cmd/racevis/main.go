package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"racevis/checking"
	"racevis/graph"
	"racevis/machine"
	"racevis/trace"
)

func main() {
	outDir := flag.String("out", "animations", "directory for generated diagram files")
	cDir := flag.String("c-examples", "c_examples", "directory containing the C reference programs")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("Could not create output directory", "dir", *outDir, "err", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("  Race Condition Visualizer")
	fmt.Println("  State machine models of a shared-counter race")
	fmt.Println("  and Peterson's algorithm")
	fmt.Println(strings.Repeat("=", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printMenu()
		fmt.Print("\nEnter your choice: ")
		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "1":
			raceGraphs(*outDir)
		case "2":
			raceTimeline()
		case "3":
			petersonGraphs(*outDir)
		case "4":
			petersonTimeline()
		case "5":
			runCExample(*cDir, "race_condition_example")
		case "6":
			runCExample(*cDir, "peterson_algorithm")
		case "7":
			raceGraphs(*outDir)
			petersonGraphs(*outDir)
			raceTimeline()
			petersonTimeline()
			fmt.Printf("\nAll diagrams written to %v\n", *outDir)
		case "8":
			verificationReport()
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Visualization Options:")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("1. Race Condition State Graph")
	fmt.Println("2. Race Condition Timeline")
	fmt.Println("3. Peterson's Algorithm State Graph")
	fmt.Println("4. Peterson's Algorithm Timeline")
	fmt.Println("5. Run C Race Condition Example")
	fmt.Println("6. Run C Peterson's Algorithm Example")
	fmt.Println("7. Generate ALL Visualizations")
	fmt.Println("8. Verification Report")
	fmt.Println("0. Exit")
	fmt.Println(strings.Repeat("=", 60))
}

func raceGraphs(outDir string) {
	m := machine.NewRaceConditionStateMachine()
	writeDiagrams(outDir, "race_condition", m)
}

func petersonGraphs(outDir string) {
	m := machine.NewPetersonStateMachine()
	writeDiagrams(outDir, "peterson", m, graph.PetersonFieldsOption{})
}

func writeDiagrams(outDir, name string, m machine.Machine, opts ...graph.DotOption) {
	writers := []struct {
		ext   string
		write func(f *os.File) error
	}{
		{"dot", func(f *os.File) error { return graph.WriteDot(f, m, opts...) }},
		{"mmd", func(f *os.File) error { return graph.WriteMermaid(f, m) }},
		{"nwk", func(f *os.File) error { return graph.WriteOutline(f, m) }},
	}
	for _, wrt := range writers {
		path := filepath.Join(outDir, fmt.Sprintf("%v_graph.%v", name, wrt.ext))
		f, err := os.Create(path)
		if err != nil {
			slog.Error("Could not create diagram file", "path", path, "err", err)
			continue
		}
		err = wrt.write(f)
		f.Close()
		if err != nil {
			slog.Error("Could not write diagram", "path", path, "err", err)
			continue
		}
		fmt.Printf("Saved %v\n", path)
	}
}

func raceTimeline() {
	m := machine.NewRaceConditionStateMachine()

	fmt.Println("\nSafe execution: P1 increments, then P2 increments")
	trace.Format(os.Stdout, trace.Generate(m, []int{0, 1, 2}))
	fmt.Println("One increment completed, counter is 1; P2's increment would bring it to 2.")

	fmt.Println("\nRace: both read the counter before either writes")
	trace.Format(os.Stdout, trace.Generate(m, []int{6, 7, 8}))
	fmt.Println("Two increments performed, counter is 1. One update was lost!")
}

func petersonTimeline() {
	m := machine.NewPetersonStateMachine()

	fmt.Println("\nP1 enters the critical section alone")
	trace.Format(os.Stdout, trace.Generate(m, []int{0, 1, 2}))

	fmt.Println("\nContention: P2 requests while P1 is waiting")
	trace.Format(os.Stdout, trace.Generate(m, []int{0, 6, 8}))
	fmt.Println("P2 enters first, P1 keeps waiting. Never both in the critical section.")
}

func verificationReport() {
	race := machine.NewRaceConditionStateMachine()
	peterson := machine.NewPetersonStateMachine()

	fmt.Println("\nRace condition machine, checking the RaceFree property:")
	_, desc := checking.NewPredicateChecker(checking.RaceFree).Check(race).Response()
	fmt.Println(desc)
	fmt.Printf("Race states: %v of %v\n", len(race.RaceStates()), len(race.States()))

	fmt.Println("\nPeterson machine, checking the MutualExclusion property:")
	_, desc = checking.NewPredicateChecker(checking.MutualExclusion).Check(peterson).Response()
	fmt.Println(desc)
	fmt.Printf("VerifyMutualExclusion: %v\n", peterson.VerifyMutualExclusion())
}

// Compile a C reference program with gcc and run the binary, streaming its
// output. Also emits the assembly so the read-modify-write of the counter
// can be inspected.
func runCExample(cDir, name string) {
	src := filepath.Join(cDir, name+".c")
	if _, err := os.Stat(src); err != nil {
		slog.Error("C example not found", "path", src, "err", err)
		return
	}

	asm := filepath.Join(cDir, name+".s")
	if out, err := exec.Command("gcc", "-O0", "-g", "-S", src, "-o", asm).CombinedOutput(); err != nil {
		slog.Warn("Could not generate assembly", "src", src, "err", err, "output", string(out))
	}

	exe := filepath.Join(cDir, name)
	if out, err := exec.Command("gcc", "-O0", "-g", src, "-o", exe, "-lpthread").CombinedOutput(); err != nil {
		slog.Error("Could not compile C example", "src", src, "err", err, "output", string(out))
		return
	}

	fmt.Printf("\nRunning %v\n", exe)
	cmd := exec.Command(exe)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		slog.Error("C example failed", "exe", exe, "err", err)
	}
}
