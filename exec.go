package ico2svg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/esimov/ico2svg/utils"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Supported files
var validExtensions = []string{".ico"}

// Ops holds the source and destination of a conversion run.
// Src may be a file, a directory, an http(s) URL or the pipe name.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
	// Stderr receives the status messages, os.Stderr if nil.
	Stderr io.Writer
}

// result holds the relevant information about a single conversion.
type result struct {
	path string
	err  error
}

// Execute runs the conversion described by op.
// A directory source is converted file by file on concurrent workers;
// per-file failures are reported and the first one is returned once the batch finished.
func (p *Processor) Execute(ctx context.Context, op *Ops) error {
	if _, _, err := p.Validate(); err != nil {
		return err
	}
	if op.Stderr == nil {
		op.Stderr = os.Stderr
	}

	src := op.Src
	// Check if source path is a local file or URL.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadIcon(ctx, src)
		if err != nil {
			return fmt.Errorf("failed to load the source icon: %w", err)
		}
		defer os.Remove(f.Name())
		if err := f.Close(); err != nil {
			return err
		}
		src = f.Name()
	}

	now := time.Now()

	if src == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("`-` should be used with a pipe for stdin")
		}
		return op.process(p, os.Stdin, op.Dst)
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to load the source icon: %w", err)
	}

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("ico2svg", utils.StatusMessage),
		utils.DecorateText("⇢ converting...", utils.DefaultMessage),
	), time.Millisecond*80, true)

	switch mode := fi.Mode(); {
	case mode.IsDir():
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}
		spinner.Start()
		err = op.batch(ctx, p, src)
		spinner.Stop()
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := filepath.Ext(op.Dst)
		if ext != ".svg" && op.Dst != op.PipeName {
			return fmt.Errorf("%v file type not supported", ext)
		}
		f, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("unable to open the source file: %w", err)
		}
		defer f.Close()

		err = op.process(p, f, op.Dst)
		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s is neither a file nor a directory", src)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(op.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// batch converts every icon found under dir, writing the results into op.Dst.
func (op *Ops) batch(ctx context.Context, p *Processor, dir string) error {
	workers := op.Workers
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	paths := walkDir(ctx, g, dir, validExtensions)
	results := make(chan result)

	var workersGroup errgroup.Group
	for i := 0; i < workers; i++ {
		workersGroup.Go(func() error {
			op.consumer(ctx, p, dir, paths, results)
			return nil
		})
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(results)
		workersGroup.Wait()
	}()

	var (
		firstErr error
		failed   int
	)
	for res := range results {
		op.printOpStatus(res.path, res.err)
		if res.err != nil {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", res.path, res.err)
			}
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if failed > 1 {
		return fmt.Errorf("%d icons failed, first: %w", failed, firstErr)
	}
	return firstErr
}

// consumer reads the path names from the paths channel and converts each icon.
func (op *Ops) consumer(
	ctx context.Context,
	p *Processor,
	root string,
	paths <-chan string,
	res chan<- result,
) {
	for src := range paths {
		err := Convert(src, op.destination(root, src), p)

		select {
		case <-ctx.Done():
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// destination maps a source icon to its output path, keeping the directory
// layout relative to the walked root.
func (op *Ops) destination(root, src string) string {
	rel, err := filepath.Rel(root, src)
	if err != nil {
		rel = filepath.Base(src)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".svg"
	dst := filepath.Join(op.Dst, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		log.Printf("could not create the output directory: %v", err)
	}
	return dst
}

// process converts a single icon stream and writes the result to out.
func (op *Ops) process(p *Processor, r io.Reader, out string) error {
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return p.Process(r, os.Stdout)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read the source icon: %w", err)
	}
	svg, err := p.Encode(data)
	if err != nil {
		return err
	}
	return writeFileAtomic(out, svg)
}

// printOpStatus displays the relevant information about the conversion.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(op.Stderr, "\n%s %s\n",
			utils.DecorateText("Error converting "+filepath.Base(fname)+":", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(op.Stderr, "\nThe icon has been converted: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// walkDir starts a new goroutine in g to walk the specified directory tree
// in recursive manner and sends the path of each supported file to the returned channel.
// It finishes in case the context gets cancelled.
func walkDir(ctx context.Context, g *errgroup.Group, src string, srcExts []string) <-chan string {
	pathChan := make(chan string)

	g.Go(func() error {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !slices.Contains(srcExts, strings.ToLower(filepath.Ext(d.Name()))) {
				return nil
			}

			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	})
	return pathChan
}
