package railway

import (
	"encoding/json"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/tidwall/jsonc"
)

// starshipOutput is what `railway starship` prints for a linked project.
// Unknown keys are ignored.
type starshipOutput struct {
	Name                 *string `json:"name"`
	EnvironmentName      *string `json:"environmentName"`
	EnvironmentNameSnake *string `json:"environment_name"`
}

// environment prefers the camelCase key the CLI emits today
func (o starshipOutput) environment() *string {
	if o.EnvironmentName != nil {
		return o.EnvironmentName
	}
	return o.EnvironmentNameSnake
}

// linked reports whether the tool reported any project binding
func (o starshipOutput) linked() bool {
	return o.Name != nil || o.environment() != nil
}

// parseStarshipOutput decodes the tool's stdout. Comments and trailing
// commas are tolerated.
func parseStarshipOutput(stdout string) (starshipOutput, error) {
	var out starshipOutput
	if err := json.Unmarshal(jsonc.ToJSON([]byte(stdout)), &out); err != nil {
		return starshipOutput{}, errors.Wrap(err, errors.ErrInvalidInput, "undecodable railway output").
			WithDetail("stdout", stdout)
	}
	return out, nil
}
