package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
)

// shellHelp lists the interactive commands.
var shellHelp = heredoc.Doc(`
	Commands:
	  volumes                     List fixed local volumes
	  drive-space <vol>           Free/used capacity of a volume
	  largest-folders <vol>       Largest directories near the volume root
	  file-types <vol>            Size distribution by file extension
	  largest-files <vol>         Largest individual files
	  recent-large-files <vol>    Large files modified within 30 days
	  old-large-files <vol>       Large files untouched for 180 days
	  analyze <vol>               Full report (all of the above)
	  pwd                         Print working directory
	  echo [words...]             Print arguments
	  help                        Show this help
	  exit [code]                 Leave the shell

	On Windows a volume may be given as a bare drive letter ('C') or a
	root path ('C:/'); elsewhere use the mount-point path ('/', '/home').
`)

// normalizeVolume turns a user-typed volume reference into the
// identifier the engine expects. Windows drive letters are expanded to
// root paths; POSIX identifiers must be absolute paths.
func normalizeVolume(goos, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("missing volume")
	}

	if goos == "windows" {
		letter := strings.ToUpper(raw)

		switch {
		case len(letter) == 1 && letter[0] >= 'A' && letter[0] <= 'Z':
			return letter + ":/", nil
		case len(letter) == 2 && letter[1] == ':' && letter[0] >= 'A' && letter[0] <= 'Z':
			return letter + "/", nil
		case len(letter) == 3 && letter[1] == ':' &&
			(letter[2] == '/' || letter[2] == '\\') &&
			letter[0] >= 'A' && letter[0] <= 'Z':
			return letter[:2] + "/", nil
		default:
			return "", fmt.Errorf(
				"invalid volume %q: use a drive letter ('C') or a root path ('C:/')", raw)
		}
	}

	if !strings.HasPrefix(raw, "/") {
		return "", fmt.Errorf("invalid volume %q: use an absolute mount-point path", raw)
	}

	return raw, nil
}

// runShell reads commands line by line until exit or EOF. The scan
// cache lives for the whole session, so a volume is walked at most once
// no matter how many queries target it.
func runShell(ctx context.Context, deps *dependencies) error {
	fmt.Println("drivestat interactive shell; type 'help' for commands")

	reader := bufio.NewScanner(os.Stdin)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Print("drivestat> ")

		if !reader.Scan() {
			fmt.Println()

			return reader.Err()
		}

		fields := strings.Fields(reader.Text())
		if len(fields) == 0 {
			continue
		}

		command, args := strings.ToLower(fields[0]), fields[1:]

		exit, err := dispatch(ctx, deps, command, args)

		deps.progress.clear()

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		if exit {
			return nil
		}
	}
}

// dispatch executes one shell command. The returned bool requests shell
// termination.
func dispatch(ctx context.Context, deps *dependencies, command string, args []string) (bool, error) {
	switch command {
	case "exit":
		if len(args) > 0 {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("exit: invalid code %q", args[0])
			}

			os.Exit(code)
		}

		return true, nil

	case "help":
		fmt.Print(shellHelp)

		return false, nil

	case "echo":
		fmt.Println(strings.Join(args, " "))

		return false, nil

	case "pwd":
		cwd, err := os.Getwd()
		if err != nil {
			return false, err
		}

		fmt.Println(cwd)

		return false, nil

	case "volumes":
		volumes, err := deps.analyzer.FixedVolumes()
		if err != nil {
			return false, err
		}

		for _, vol := range volumes {
			fmt.Println(vol)
		}

		return false, nil

	case "drive-space", "largest-folders", "file-types",
		"largest-files", "recent-large-files", "old-large-files", "analyze":
		if len(args) == 0 {
			return false, fmt.Errorf("%s: missing volume argument", command)
		}

		vol, err := normalizeVolume(runtime.GOOS, args[0])
		if err != nil {
			return false, err
		}

		return false, runQuery(ctx, deps, command, vol)

	default:
		fmt.Printf("%s: not found\n", command)

		return false, nil
	}
}

// runQuery executes a single engine query and prints its section.
func runQuery(ctx context.Context, deps *dependencies, command, vol string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, TabSpacing, ' ', 0)

	switch command {
	case "drive-space":
		space, err := deps.analyzer.DriveSpace(vol)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "\n--- Volume Space Overview ---")
		fmt.Fprintf(w, "Total Size:\t%.2f GB\n", gigabytes(space.Total))
		fmt.Fprintf(w, "Used Space:\t%.2f GB\n", gigabytes(space.Used))
		fmt.Fprintf(w, "Free Space:\t%.2f GB (%.2f%%)\n", gigabytes(space.Free), space.FreePercent)

	case "largest-folders":
		folders, err := deps.analyzer.LargestFolders(ctx, vol)
		if err != nil {
			return err
		}

		deps.progress.clear()
		fmt.Fprintf(w, "\n--- Largest Folders (Top %d) ---\n", len(folders))

		for i, folder := range folders {
			fmt.Fprintf(w, "[%d] %s\n", i+1, folder.Path)
			fmt.Fprintf(w, "  Size:\t%.2f GB\n", gigabytes(folder.Size))
			fmt.Fprintf(w, "  Files:\t%d\n", folder.FileCount)
		}

	case "file-types":
		extensions, err := deps.analyzer.ExtensionDistribution(ctx, vol)
		if err != nil {
			return err
		}

		deps.progress.clear()
		fmt.Fprintf(w, "\n--- File Type Distribution (Top %d) ---\n", len(extensions))

		for _, ext := range extensions {
			fmt.Fprintf(w, "[>] %s\n", ext.Extension)
			fmt.Fprintf(w, "  Count:\t%d\n", ext.Count)
			fmt.Fprintf(w, "  Size:\t%.2f GB\n", gigabytes(ext.Size))
		}

	case "largest-files":
		files, err := deps.analyzer.LargestFiles(ctx, vol)
		if err != nil {
			return err
		}

		deps.progress.clear()
		printFileSection(w, "Largest Files", files)

	case "recent-large-files":
		files, err := deps.analyzer.RecentLargeFiles(ctx, vol)
		if err != nil {
			return err
		}

		deps.progress.clear()
		printFileSection(w, "Recent Large Files", files)

	case "old-large-files":
		files, err := deps.analyzer.OldLargeFiles(ctx, vol)
		if err != nil {
			return err
		}

		deps.progress.clear()
		printFileSection(w, "Old Large Files", files)

	case "analyze":
		report, err := deps.analyzer.FullReport(ctx, vol)
		if err != nil {
			return err
		}

		deps.progress.clear()

		return PrintReport(report, os.Stdout)
	}

	return w.Flush()
}
