package pipeline

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
	"github.com/sreekona1935/medical-insurance-costs/pkg/dataprep"
)

const insuranceCSV = `age,sex,bmi,children,smoker,region,charges
19,Female,27.9,0,Yes,Southwest,16884.92
18,male,33.77,1,no,southeast,1725.5523
28,male,33,3,no,southeast,4449.462
33,male,22.705,0,NO ,northwest,21984.47061
32,male,28.88,0,no,northwest,3866.8552
31,female,25.74,0,no,southeast,3756.6216
46,female,33.44,1,no,  SouthEast,8240.5896
37,female,27.74,3,no,northwest,7281.5056
37,male,29.83,2,no,northeast,6406.4107
18,male,33.77,1,no,southeast,1725.5523
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildXY_EndToEnd(t *testing.T) {
	X, y, tbl, err := BuildXY(writeFile(t, "insurance.csv", insuranceCSV), false)
	require.NoError(t, err)

	// One exact duplicate removed.
	require.Equal(t, 9, tbl.Len())
	assert.Equal(t, tbl.Len(), X.Rows())
	assert.Len(t, y, tbl.Len())

	first := tbl.Records[0]
	assert.Equal(t, "female", first.Sex)
	assert.Equal(t, "southwest", first.Region)
	assert.Equal(t, 1, first.SmokerFlag)
	assert.InDelta(t, 9.7340, first.LogCharges, 1e-3)

	assert.Equal(t, []string{
		"age", "bmi", "children", "smoker_flag",
		"region_northwest", "region_southeast", "region_southwest",
	}, X.Columns)
	assert.Equal(t, []float64{19, 27.9, 0, 1, 0, 0, 1}, X.Row(0))
	assert.Equal(t, []string{
		"age", "sex", "bmi", "children", "smoker", "region", "charges", "smoker_flag", "log_charges",
	}, tbl.Columns())

	// Row alignment between features, target and cleaned table.
	for i, r := range tbl.Records {
		assert.Equal(t, r.Age, X.At(i, "age"))
		assert.Equal(t, float64(r.SmokerFlag), X.At(i, "smoker_flag"))
		assert.Equal(t, r.LogCharges, y[i])
	}

	// Exactly one region indicator is set per row, except for the baseline.
	for i, r := range tbl.Records {
		sum := X.At(i, "region_northwest") + X.At(i, "region_southeast") + X.At(i, "region_southwest")
		if r.Region == "northeast" {
			assert.Zero(t, sum)
		} else {
			assert.Equal(t, 1.0, sum)
			assert.Equal(t, 1.0, X.At(i, "region_"+r.Region))
		}
	}
}

func TestBuildXY_InteractionToggle(t *testing.T) {
	path := writeFile(t, "insurance.csv",
		"age,sex,bmi,children,smoker,region,charges\n"+
			"30,male,30.0,0,yes,northeast,1000\n"+
			"40,female,25.0,1,no,southwest,2000\n")

	X, _, _, err := BuildXY(path, true)
	require.NoError(t, err)
	col, ok := X.Col(dataprep.InteractionFeature)
	require.True(t, ok)
	assert.Equal(t, []float64{30, 0}, col)

	X, _, _, err = BuildXY(path, false)
	require.NoError(t, err)
	assert.False(t, X.Has(dataprep.InteractionFeature))
}

func TestBuildXY_InvalidSmokerReturnsNothing(t *testing.T) {
	path := writeFile(t, "insurance.csv",
		"age,sex,bmi,children,smoker,region,charges\n"+
			"30,male,30.0,0,yes,northeast,1000\n"+
			"40,female,25.0,1,Maybe,southwest,2000\n")

	X, y, tbl, err := BuildXY(path, false)
	var ve *data.DataValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Values, "maybe")
	assert.Nil(t, X)
	assert.Nil(t, y)
	assert.Nil(t, tbl)
}

func TestBuildXY_NonPositiveCharges(t *testing.T) {
	path := writeFile(t, "insurance.csv",
		"age,sex,bmi,children,smoker,region,charges\n"+
			"30,male,30.0,0,yes,northeast,0\n")

	_, _, _, err := BuildXY(path, false)
	var ve *data.DataValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "charges", ve.Column)
}

func TestBuildXY_RecomputesDerivedColumnsFromSource(t *testing.T) {
	path := writeFile(t, "cleaned.csv", `age,sex,bmi,children,smoker,region,charges,smoker_flag,log_charges
19,female,27.9,0,yes,southwest,1000,0,1.5
18,male,33.77,1,no,southeast,1725.5523,1,2.5
`)

	X, y, tbl, err := BuildXY(path, false)
	require.NoError(t, err)

	cols := tbl.Columns()
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		assert.False(t, seen[c], "column %q repeated", c)
		seen[c] = true
	}
	assert.Empty(t, tbl.ExtraColumns)

	flag, ok := X.Col(dataprep.SmokerFlagFeature)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0}, flag)
	assert.InDelta(t, 6.9078, y[0], 1e-4)
}

func TestDefaultPreparerMatchesNew(t *testing.T) {
	p, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, p.Config(), defaultPreparer.Config())
	assert.Equal(t, data.DefaultColumns(), defaultPreparer.Config().Columns)
}

func TestBuildXY_IOAndSchemaErrors(t *testing.T) {
	_, _, _, err := BuildXY(filepath.Join(t.TempDir(), "missing.csv"), false)
	var ioErr *data.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	path := writeFile(t, "insurance.csv", "age,sex,bmi\n1,male,2\n")
	_, _, _, err = BuildXY(path, false)
	var se *data.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"children", "smoker", "region", "charges"}, se.Missing)
}

func TestPreparer_CustomConfigAndLogging(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
columns:
  sex: gender
  smoker: smokes
  charges: cost
delimiter: ";"
include_interaction: true
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	p, err := New(cfg, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	path := writeFile(t, "renamed.csv",
		"age;gender;bmi;children;smokes;region;cost\n"+
			"30;M;30.0;0;YES;northeast;1000\n"+
			"30;M;30.0;0;YES;northeast;1000\n")

	X, y, tbl, err := p.Prepare(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Len(t, y, 1)
	assert.True(t, X.Has(dataprep.InteractionFeature))
	assert.Equal(t, 30.0, X.At(0, dataprep.InteractionFeature))

	logs := buf.String()
	assert.Contains(t, logs, `"component":"preparer"`)
	assert.Contains(t, logs, `"step":"drop_duplicates"`)
	assert.Contains(t, logs, `"rows_out":1`)
	assert.Contains(t, logs, "design matrix built")
}

func TestPreparer_ConcurrentCallsAreIndependent(t *testing.T) {
	p, err := New(DefaultConfig())
	require.NoError(t, err)

	good := writeFile(t, "good.csv", insuranceCSV)
	bad := writeFile(t, "bad.csv",
		"age,sex,bmi,children,smoker,region,charges\n30,male,30.0,0,perhaps,northeast,10\n")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	rows := make([]int, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := good
			if i%2 == 1 {
				path = bad
			}
			X, _, _, err := p.BuildXY(path, i%4 == 0)
			errs[i] = err
			if X != nil {
				rows[i] = X.Rows()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		if i%2 == 1 {
			assert.Error(t, errs[i])
		} else {
			assert.NoError(t, errs[i])
			assert.Equal(t, 9, rows[i])
		}
	}
}

func TestPipelineRun_StopsAtFirstError(t *testing.T) {
	var ran []string
	step := func(name string, err error) Step {
		return StepFunc{name, func(*data.Table) error {
			ran = append(ran, name)
			return err
		}}
	}
	boom := errors.New("boom")
	p := NewPipeline(zerolog.Nop(), step("a", nil), step("b", boom), step("c", nil))

	err := p.Run(&data.Table{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, ran)
}
