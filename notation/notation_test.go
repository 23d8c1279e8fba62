package notation_test

import (
	"os"
	"strings"
	"testing"

	"github.com/katalvlaran/presswork/effect"
	"github.com/katalvlaran/presswork/notation"
	"github.com/stretchr/testify/require"
)

func TestParseMachine_Sample(t *testing.T) {
	m, err := notation.ParseMachine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	require.NoError(t, err)
	require.Equal(t, 4, m.Lights.Width)
	require.Equal(t, uint64(0b0110), m.Lights.Bits)
	require.Len(t, m.Buttons, 6)
	require.Equal(t, []int{1, 3}, m.Buttons[1].Indices)
	require.Equal(t, 5, m.Buttons[5].ID)
	require.Equal(t, []int{3, 5, 4, 7}, m.Joltage)

	require.NoError(t, m.ToggleInstance().Validate())
	require.NoError(t, m.AdditiveInstance().Validate())
	require.Equal(t, "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}", m.String())
}

func TestParseMachine_EmptyButton(t *testing.T) {
	m, err := notation.ParseMachine("[#] () (0) {1}")
	require.NoError(t, err)
	require.Len(t, m.Buttons, 2)
	require.Empty(t, m.Buttons[0].Indices)
}

func TestParseMachine_Errors(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"single field", "[.#]", notation.ErrSyntax},
		{"no brackets", ".## (0) {1,1,1}", notation.ErrSyntax},
		{"bad pattern char", "[.x.] (0) {1,1,1}", effect.ErrBadPattern},
		{"no braces", "[.#] (0) 1,1", notation.ErrSyntax},
		{"bad joltage", "[.#] (0) {1,a}", notation.ErrSyntax},
		{"negative joltage", "[.#] (0) {1,-1}", effect.ErrNegativeTarget},
		{"bad button", "[.#] 0,1 {1,1}", notation.ErrSyntax},
		{"bad button index", "[.#] (0,z) {1,1}", notation.ErrSyntax},
		{"negative index", "[.#] (-1) {1,1}", effect.ErrIndexOutOfRange},
		{"beyond width", "[.#] (2) {1,1,1}", effect.ErrIndexOutOfRange},
		{"beyond joltage", "[.##] (2) {1,1}", effect.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := notation.ParseMachine(tc.line)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_File(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	ms, err := notation.Parse(f)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	for i, m := range ms {
		require.Equal(t, i+1, m.Line)
	}
	require.Equal(t, []int{10, 11, 11, 5, 10, 5}, ms[2].Joltage)
}

func TestParse_LineNumbers(t *testing.T) {
	in := "\n[#] (0) {1}\n\n[#] (0 {1}\n"
	_, err := notation.Parse(strings.NewReader(in))
	require.ErrorIs(t, err, notation.ErrSyntax)
	require.Contains(t, err.Error(), "line 4")

	ms, err := notation.Parse(strings.NewReader("  \n\n"))
	require.NoError(t, err)
	require.Empty(t, ms)
}
