// sbmedia is a debugging and conversion tool for the tagged media
// objects inside legacy Scratch files: it pretty-prints serialized
// object dumps, exports Forms as PNG images, and imports raster images
// as depth-32 Forms.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/squeaklab/sbmedia/pkg/costume"
	"github.com/squeaklab/sbmedia/pkg/logging"
	"github.com/squeaklab/sbmedia/pkg/squeak"
)

const version = "0.1.0"

var (
	logLevel    string
	thumbWidth  uint
	thumbHeight uint
	rootCmd     *cobra.Command
	versionFlag bool
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "sbmedia",
		Short: "Inspect and convert legacy Scratch media objects",
		Long:  `Inspect and convert the tagged Squeak-format media objects stored in legacy Scratch (.sb) files`,
		RunE:  runRoot,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	inspectCmd := &cobra.Command{
		Use:   "inspect <object-dump>",
		Short: "Pretty-print a serialized object dump",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	exportCmd := &cobra.Command{
		Use:   "export <object-dump> <output.png>",
		Short: "Export a serialized Form dump as a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE:  runExport,
	}

	importCmd := &cobra.Command{
		Use:   "import <image> <output>",
		Short: "Import a raster image as a serialized depth-32 Form",
		Args:  cobra.ExactArgs(2),
		RunE:  runImport,
	}

	thumbCmd := &cobra.Command{
		Use:   "thumb <image> <output.png>",
		Short: "Write a scaled preview of a raster image",
		Args:  cobra.ExactArgs(2),
		RunE:  runThumb,
	}
	thumbCmd.Flags().UintVar(&thumbWidth, "max-width", 160, "Maximum thumbnail width")
	thumbCmd.Flags().UintVar(&thumbHeight, "max-height", 120, "Maximum thumbnail height")

	rootCmd.AddCommand(inspectCmd, exportCmd, importCmd, thumbCmd)
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("sbmedia %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("sbmedia %s\n", version)
		return nil
	}
	return cmd.Help()
}

func effectiveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return logging.GetLogLevel()
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("sbmedia", effectiveLogLevel(), nil)
	squeak.SetLogger(logger.Named("codec"))
	squeak.SetFormLogger(logger.Named("form"))

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	obj, rest, err := squeak.Decode(data)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		logger.Warn("trailing bytes after object", "count", len(rest))
	}

	fmt.Print(describe(obj, 0))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("sbmedia", effectiveLogLevel(), nil)
	squeak.SetLogger(logger.Named("codec"))
	squeak.SetFormLogger(logger.Named("form"))

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	obj, _, err := squeak.Decode(data)
	if err != nil {
		return err
	}

	var form *squeak.Form
	switch v := obj.(type) {
	case *squeak.Form:
		form = v
	case *squeak.ColorForm:
		form = &v.Form
	default:
		return fmt.Errorf("%s is a %s, not a Form", args[0], squeak.KindName(obj.Tag()))
	}

	if err := form.SavePNG(args[1]); err != nil {
		return err
	}
	logger.Info("📦 exported form", "input", args[0], "output", args[1])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("sbmedia", effectiveLogLevel(), nil)
	squeak.SetLogger(logger.Named("codec"))

	c, err := costume.FromFile(args[0])
	if err != nil {
		return err
	}

	encoded, err := squeak.Encode(c.Form)
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], encoded, 0o644); err != nil {
		return err
	}

	width, height, sizeErr := c.Size()
	if sizeErr == nil {
		logger.Info("📦 imported image", "name", c.Name,
			"width", width, "height", height, "bytes", len(encoded))
	}
	return nil
}

func runThumb(cmd *cobra.Command, args []string) error {
	c, err := costume.FromFile(args[0])
	if err != nil {
		return err
	}
	return c.SaveThumbnailPNG(args[1], thumbWidth, thumbHeight)
}
