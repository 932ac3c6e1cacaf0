package wizard

import (
	"errors"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pretty"
	"github.com/spf13/cobra"
)

var (
	ErrConfirmationRequired = errors.New("confirmation required: use --yes flag in non-interactive mode")
)

// Confirm asks a y/n question. With force set it never prompts; in a
// non-interactive session without force it refuses instead of hanging.
func Confirm(question string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !pretty.Interactive {
		return false, ErrConfirmationRequired
	}
	validator := memberValidation([]string{"y", "Y", "n", "N"}, "Please answer 'y' or 'n'.")
	response, err := ask(question, "n", validator)
	if err != nil {
		return false, err
	}
	confirmed := response == "y" || response == "Y"
	if !confirmed {
		common.Stdout("%sOperation cancelled.%s\n", pretty.Grey, pretty.Reset)
	}
	return confirmed, nil
}

// AddYesFlag attaches the conventional --yes/-y skip-confirmation flag.
func AddYesFlag(command *cobra.Command, target *bool) {
	command.Flags().BoolVarP(target, "yes", "y", false, "Skip confirmation prompt.")
}
