package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/spf13/cobra"
)

var scaleType string

func init() {
	scaleCmd.Flags().StringVarP(&scaleType, "type", "t", "major", "scale type")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale ROOT",
	Short: "Spells a scale",
	Long: `Spells a scale from ROOT. ROOT may be a key such as Dm, which picks the
key's accidentals. Known types: ` + strings.Join(scale.Types(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := scaleFor(args[0], scaleType)
		if err != nil {
			return err
		}
		return output(cmd, res, func(w io.Writer) {
			fmt.Fprintf(w, "%v %v: %v\n", res.Root, res.Name, strings.Join(res.Notes, " "))
		})
	},
}

func scaleFor(root, scaleType string) (model.ScaleResponse, error) {
	if err := scale.Validate(scaleType); err != nil {
		return model.ScaleResponse{}, err
	}
	notes, err := scale.ForKey(root, scaleType)
	if err != nil {
		return model.ScaleResponse{}, err
	}
	return model.ScaleResponse{
		Root:  root,
		Type:  scaleType,
		Name:  scale.DisplayName(scaleType),
		Notes: notes,
	}, nil
}
