package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vaultdweller/fo2sav/internal/binary"
	"github.com/vaultdweller/fo2sav/internal/model"
	"github.com/vaultdweller/fo2sav/internal/report"
	"github.com/vaultdweller/fo2sav/internal/sav"
	"github.com/vaultdweller/fo2sav/pkg/fo2sav"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fo2sav",
	Short: "Inspect and edit Fallout 2 save files",
	Long: `fo2sav is a tool for working with Fallout 2 save games.

It decodes the SAVE.DAT header and the per-map state files inside a
save slot, lists map variables and scripts, and can patch individual
script-local variables in place.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(scriptsCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(setlvarCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadMap reads a map state file, inflating the gzip layer when present.
// It returns the decoded map, the uncompressed bytes, and whether the
// file on disk was compressed.
func loadMap(path string) (*model.MapFile, []byte, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, false, fmt.Errorf("read map file: %w", err)
	}
	data, wasCompressed, err := fo2sav.Decompress(raw)
	if err != nil {
		return nil, nil, false, fmt.Errorf("decompress map file: %w", err)
	}
	m, err := fo2sav.DecodeMap(data)
	if err != nil {
		return nil, nil, false, fmt.Errorf("decode map file: %w", err)
	}
	return m, data, wasCompressed, nil
}

func decodeHeaderFile(path string, codepage int) (model.SaveHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SaveHeader{}, fmt.Errorf("read save file: %w", err)
	}
	if codepage != 0 {
		return fo2sav.DecodeSaveHeaderCharmap(data, binary.Charmap(codepage))
	}
	return fo2sav.DecodeSaveHeader(data)
}

// header command
var headerCmd = &cobra.Command{
	Use:   "header <SAVE.DAT>",
	Short: "Display the save file header",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeader,
}

func init() {
	headerCmd.Flags().Bool("json", false, "Output as JSON")
	headerCmd.Flags().Int("codepage", 0, "Decode name fields with a Windows codepage (e.g. 1251)")
}

func runHeader(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	codepage, _ := cmd.Flags().GetInt("codepage")

	h, err := decodeHeaderFile(args[0], codepage)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(saveHeaderJSON(h))
	}
	report.NewWriter(os.Stdout).WriteSaveHeader(args[0], h)
	return nil
}

func saveHeaderJSON(h model.SaveHeader) map[string]interface{} {
	return map[string]interface{}{
		"version":     h.Version,
		"releaseType": h.ReleaseType,
		"player":      h.Name,
		"saveName":    h.SaveName,
		"savedOn":     fmt.Sprintf("%04d-%02d-%02d", h.SaveYear, h.SaveMonth, h.SaveDay),
		"ingameDate":  fmt.Sprintf("%04d-%02d-%02d", h.InGameYear, h.InGameMonth, h.InGameDay),
		"ingameTicks": h.InGameTicks,
		"currentMap":  h.CurrentMap,
		"mapName":     h.MapName,
	}
}

// map command
var mapCmd = &cobra.Command{
	Use:   "map <FILE.sav>",
	Short: "Display a map state file summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runMap,
}

func init() {
	mapCmd.Flags().Bool("json", false, "Output as JSON")
}

func runMap(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	m, _, compressed, err := loadMap(args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		groups := make([]int, len(m.Groups))
		for i := range m.Groups {
			groups[i] = len(m.Groups[i].Scripts)
		}
		return writeJSON(map[string]interface{}{
			"file":       args[0],
			"compressed": compressed,
			"engine":     m.Header.Version.String(),
			"filename":   m.Header.Filename,
			"mapId":      m.Header.ID,
			"flags":      uint32(m.Header.Flags),
			"globals":    len(m.Variables.GlobalVariables),
			"locals":     len(m.Variables.LocalVariables),
			"scripts":    len(m.Scripts()),
			"groups":     groups,
		})
	}
	report.NewWriter(os.Stdout).WriteMapSummary(args[0], m)
	return nil
}

// vars command
var varsCmd = &cobra.Command{
	Use:   "vars <FILE.sav>",
	Short: "List a map's global and local variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, _, err := loadMap(args[0])
		if err != nil {
			return err
		}
		report.NewWriter(os.Stdout).WriteVariables(m.Variables)
		return nil
	},
}

// scripts command
var scriptsCmd = &cobra.Command{
	Use:   "scripts <FILE.sav>",
	Short: "List a map's scripts in engine order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, _, err := loadMap(args[0])
		if err != nil {
			return err
		}
		report.NewWriter(os.Stdout).WriteScripts(m.Scripts())
		return nil
	},
}

// slots command
var slotsCmd = &cobra.Command{
	Use:   "slots <savegame-dir>",
	Short: "List save slots under a SAVEGAME directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlots,
}

func init() {
	slotsCmd.Flags().Int("codepage", 0, "Decode name fields with a Windows codepage")
}

func runSlots(cmd *cobra.Command, args []string) error {
	codepage, _ := cmd.Flags().GetInt("codepage")

	slots, err := sav.ListSlots(args[0])
	if err != nil {
		return err
	}
	for _, slot := range slots {
		h, err := decodeHeaderFile(slot.SaveDatPath(), codepage)
		if err != nil {
			fmt.Printf("%s: %v\n", slot.Name, err)
			continue
		}
		fmt.Printf("%s: %s - %s (%s, saved %04d-%02d-%02d)\n",
			slot.Name, h.Name, h.SaveName, h.MapName, h.SaveYear, h.SaveMonth, h.SaveDay)
	}
	return nil
}

// setlvar command
var setlvarCmd = &cobra.Command{
	Use:   "setlvar <FILE.sav>",
	Short: "Overwrite one script-local variable in a map state file",
	Long: `Overwrite a single script-local variable by patching 4 bytes at its
computed offset, leaving every other byte of the file untouched.

The script is addressed by its position in the engine script order, as
printed by the scripts command.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetlvar,
}

func init() {
	setlvarCmd.Flags().Int("script", -1, "Script index in engine order (required)")
	setlvarCmd.Flags().Int("field", 0, "Local variable index within the script")
	setlvarCmd.Flags().Int32("value", 0, "New variable value (required)")
	setlvarCmd.Flags().StringP("output", "o", "", "Output file (default: overwrite input)")
	setlvarCmd.MarkFlagRequired("script")
	setlvarCmd.MarkFlagRequired("value")
}

func runSetlvar(cmd *cobra.Command, args []string) error {
	scriptIdx, _ := cmd.Flags().GetInt("script")
	field, _ := cmd.Flags().GetInt("field")
	value, _ := cmd.Flags().GetInt32("value")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = args[0]
	}

	m, data, wasCompressed, err := loadMap(args[0])
	if err != nil {
		return err
	}

	scripts := m.Scripts()
	if scriptIdx < 0 || scriptIdx >= len(scripts) {
		return fmt.Errorf("script index %d out of range (%d scripts)", scriptIdx, len(scripts))
	}

	patched, err := fo2sav.SetLocalVariable(data, m, scripts[scriptIdx], field, value)
	if err != nil {
		return fmt.Errorf("patch local variable: %w", err)
	}

	out := patched
	if wasCompressed {
		if out, err = fo2sav.Compress(patched); err != nil {
			return fmt.Errorf("recompress map file: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Patched script %d (id %d) local variable %d to %d in %s\n",
		scriptIdx, scripts[scriptIdx].ID, field, value, outputPath)
	return nil
}

// version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fo2sav version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
	},
}

func writeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
