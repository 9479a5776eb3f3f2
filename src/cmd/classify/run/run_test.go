package run

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

func writeFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRun(t *testing.T) {
	optionsFile := writeFile(t, "options.csv", `id,underlying_symbol,option_type,strike_price,expiration_date,units,average_purchase_price
1,spy,put,500,2024-06-21,-1,4.2
2,SPY,P,495,2024-06-21,1,2.9
3,AAPL,call,220,2024-07-19,-1,3.5
4,AAPL,call,250,2025-01-17,1,12
`)

	holdingsFile := writeFile(t, "holdings.csv", `underlying_symbol,units,price
AAPL,150,210
`)

	result, err := Run(RunArgs{OptionsFile: optionsFile, HoldingsFile: holdingsFile})
	require.NoError(t, err)
	require.Len(t, result.Options, 4)

	assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result.Options[0].StrategyType)
	assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result.Options[1].StrategyType)
	assert.Equal(t, "SPY-2024-06-21-1", result.Options[0].GetSpreadID())
	assert.Equal(t, eventmodels.StrategyTypeCoveredCalls, result.Options[2].StrategyType)
	assert.Equal(t, eventmodels.StrategyTypeLeap, result.Options[3].StrategyType)

	var buf bytes.Buffer
	RenderTable(&buf, result)

	assert.Contains(t, buf.String(), "bull-put-credit-spread")
	assert.Contains(t, buf.String(), "$770.00")
}

func TestRun__MissingFile(t *testing.T) {
	_, err := Run(RunArgs{OptionsFile: filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}
