package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/wordsearch-mcp/internal/geometry"
	"github.com/ironsheep/wordsearch-mcp/internal/imaging"
	"github.com/ironsheep/wordsearch-mcp/internal/logger"
	"github.com/ironsheep/wordsearch-mcp/internal/ocr"
	"github.com/ironsheep/wordsearch-mcp/internal/session"
)

type solveFlags struct {
	region        string
	wordsRegion   string
	displayHeight int
	puzzlePath    string
	gridPath      string
	out           string
	outline       bool
	asJSON        bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve <image> [words...]",
		Short: "Read a puzzle image and draw the solutions",
		Long: `Solve a scanned puzzle. The grid inside --region is read with Tesseract,
the words are located, and the image is written to --out with a line over
every word found.

--region is given in display coordinates: the image scaled to
--display-height, as it would appear on screen. Words come from the
arguments, a YAML puzzle file, or OCR of --words-region. --grid or a
puzzle file's grid skips grid OCR.`,
		Example: `  wordsearch solve scan.jpg --region 55,107,531,565 --out solved.png cat dog
  wordsearch solve scan.jpg --region 55,107,531,565 --words-region 560,107,700,565 --out solved.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f, args[0], args[1:])
		},
	}
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "grid selection x1,y1,x2,y2 in display pixels (required)")
	cmd.Flags().StringVar(&f.wordsRegion, "words-region", "", "word list selection x1,y1,x2,y2 in display pixels, read with OCR")
	cmd.Flags().IntVar(&f.displayHeight, "display-height", 0, "display height in pixels (default from config)")
	cmd.Flags().StringVarP(&f.puzzlePath, "puzzle", "p", "", "YAML puzzle file supplying grid and/or words")
	cmd.Flags().StringVarP(&f.gridPath, "grid", "g", "", "text grid file; skips grid OCR")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output PNG path (required)")
	cmd.Flags().BoolVar(&f.outline, "outline", false, "outline the selection in the output")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "output results as JSON")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags, imagePath string, args []string) error {
	selection, err := parseRect(f.region)
	if err != nil {
		return fmt.Errorf("--region: %w", err)
	}
	g, bank, err := puzzleInput(f.puzzlePath, f.gridPath, args)
	if err != nil {
		return err
	}

	height := f.displayHeight
	if height <= 0 {
		height = a.cfg.Display.Height
	}
	sess := session.New(session.Options{DisplayHeight: height, Style: a.renderStyle()})
	if _, err := sess.Load(imaging.NewImageCache(), imagePath); err != nil {
		return err
	}
	img, _, err := sess.Image()
	if err != nil {
		return err
	}

	region, err := sess.SelectionInImage(selection)
	if err != nil {
		return err
	}
	var scanned geometry.Rect
	if g.Rows() > 0 {
		// Letters are assumed to fill the selection.
		crop := region.Image().Intersect(img.Bounds())
		scanned = geometry.Rect{X2: crop.Dx(), Y2: crop.Dy()}
	} else {
		scan, err := ocr.ExtractGrid(img, region, a.ocrOptions())
		if err != nil {
			return err
		}
		g, scanned = scan.Grid, scan.Bounds
		logger.Info("Recognized %d symbols in %d rows", len(scan.Symbols), g.Rows())
		if len(scan.RaggedRows) > 0 {
			logger.Warn("Grid rows %v differ in length from row 0", scan.RaggedRows)
		}
	}
	if g.Rows() == 0 {
		return errors.New("no letters recognized in the selection")
	}
	if err := sess.Select(selection, scanned, g); err != nil {
		return err
	}

	if len(bank) == 0 && f.wordsRegion != "" {
		wr, err := parseRect(f.wordsRegion)
		if err != nil {
			return fmt.Errorf("--words-region: %w", err)
		}
		wordsRegion, err := sess.SelectionInImage(wr)
		if err != nil {
			return err
		}
		if bank, err = ocr.ExtractWords(img, wordsRegion, a.ocrOptions()); err != nil {
			return err
		}
	}
	if len(bank) == 0 {
		return errNoWords
	}
	sess.SetWords(bank)

	results, err := sess.Highlight()
	if err != nil {
		return err
	}
	rendered, err := sess.Render(f.outline)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.out, rendered.PNG, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.out, err)
	}
	logger.Info("Wrote %s (%dx%d, %d segments)", f.out, rendered.Width, rendered.Height, rendered.Segments)

	if f.asJSON {
		return outputResultsJSON(cmd, results)
	}
	g, _ = sess.Grid()
	outputResultsText(cmd, g, results)
	cmd.Printf("Solution written to %s\n", f.out)
	return nil
}
