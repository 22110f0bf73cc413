// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"github.com/sixdegrees/degrees/internal/pkg/test"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

// Functional tests for the degrees command line interface.

func TestMain_interactive(t *testing.T) {
	for _, x := range []struct {
		name, input string
		want        []string
	}{
		{
			name:  "connected",
			input: "Tom Cruise\nTom Hanks\n",
			want: []string{`Loading data...
Data loaded.
2 degrees of separation.
1: Tom Cruise and Kevin Bacon starred in A Few Good Men
2: Kevin Bacon and Tom Hanks starred in Apollo 13
`},
		},
		{
			name:  "ambiguous",
			input: "kevin bacon\n102\nTom Hanks\n",
			want: []string{
				"Which 'kevin bacon'?\n",
				"ID: 102, Name: Kevin Bacon, Birth: 1958\n",
				"ID: 9999, Name: Kevin Bacon, Birth: \n",
				"1 degrees of separation.\n1: Kevin Bacon and Tom Hanks starred in Apollo 13\n",
			},
		},
		{
			name:  "not connected",
			input: "Emma Watson\nTom Hanks\n",
			want:  []string{"Data loaded.\nNot connected.\n"},
		},
		{
			name:  "same person",
			input: "Tom Hanks\nTom Hanks\n",
			want:  []string{"Data loaded.\n0 degrees of separation.\n"},
		},
	} {
		t.Run(x.name, func(t *testing.T) {
			cmd := command(t)
			cmd.Stdin = strings.NewReader(x.input)
			out, err := cmd.Output()
			require.NoError(t, test.ExecError(err))
			for _, w := range x.want {
				assert.Contains(t, string(out), w)
			}
		})
	}
}

func TestMain_interactive_directory(t *testing.T) {
	cmd := command(t, "../../data/small")
	cmd.Stdin = strings.NewReader("Cary Elwes\nKevin Bacon\n102\n")
	out, err := cmd.Output()
	require.NoError(t, test.ExecError(err))
	assert.Contains(t, string(out), "3 degrees of separation.\n")
	assert.Contains(t, string(out), "1: Cary Elwes and Robin Wright starred in The Princess Bride\n")
}

func TestMain_interactive_notFound(t *testing.T) {
	for _, input := range []string{"Nobody\nTom Hanks\n", "Kevin Bacon\n404\n"} {
		t.Run(input, func(t *testing.T) {
			cmd := command(t)
			cmd.Args = slicesWithout(cmd.Args, "--panic")
			cmd.Stdin = strings.NewReader(input)
			cmd.Stderr = nil
			out, err := cmd.CombinedOutput()
			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 1, exitErr.ExitCode())
			assert.True(t, strings.HasSuffix(string(out), "Person not found.\n"), string(out))
		})
	}
}

func TestMain_interactive_prompts(t *testing.T) {
	cmd := command(t, "--quiet=false")
	cmd.Stdin = strings.NewReader("Kevin Bacon\n102\nTom Hanks\n")
	out, err := cmd.Output()
	require.NoError(t, test.ExecError(err))
	assert.Contains(t, string(out), "Data loaded.\nName: Which 'Kevin Bacon'?\n")
	assert.Contains(t, string(out), "Intended Person ID: Name: 1 degrees of separation.\n")

	out, err = command(t, "--help").Output()
	require.NoError(t, test.ExecError(err))
	assert.Contains(t, string(out), "Input prompts are not printed when stdin is not a terminal")
}

func TestMain_path(t *testing.T) {
	for _, x := range []struct {
		args []string
		want string
	}{
		{
			args: []string{"path", "Tom Cruise", "Tom Hanks"},
			want: `2 degrees of separation.
1: Tom Cruise and Kevin Bacon starred in A Few Good Men
2: Kevin Bacon and Tom Hanks starred in Apollo 13`,
		},
		{
			args: []string{"path", "102", "emma watson"},
			want: "Not connected.",
		},
		{
			args: []string{"path", "-t", `{{.Degrees}} {{range .Steps}}{{.Name | upper}},{{end}}`, "129", "158"},
			want: "2 KEVIN BACON,TOM HANKS,",
		},
		{
			args: []string{"path", "--max-depth", "1", "129", "158"},
			want: "Not connected.",
		},
		{
			args: []string{"-o", "json", "path", "102", "158"},
			want: `{"source":"102","target":"158","connected":true,"degrees":1,"steps":[{"movie":"112384","title":"Apollo 13","person":"158","name":"Tom Hanks"}]}`,
		},
	} {
		t.Run(strings.Join(x.args, " "), func(t *testing.T) {
			out, err := command(t, x.args...).Output()
			require.NoError(t, test.ExecError(err))
			assert.Equal(t, x.want, strings.TrimSpace(string(out)))
		})
	}
}

func TestMain_path_dfs(t *testing.T) {
	out, err := command(t, "-o", "json", "path", "--strategy", "dfs", "144", "102").Output()
	require.NoError(t, test.ExecError(err))
	var got rest.PathResult
	require.NoError(t, json.Unmarshal(out, &got))
	assert.True(t, got.Connected)
	assert.GreaterOrEqual(t, got.Degrees, 3)
	assert.Equal(t, "102", got.Steps[len(got.Steps)-1].Person)
}

func TestMain_path_dot(t *testing.T) {
	out, err := command(t, "-o", "dot", "path", "Cary Elwes", "102").Output()
	require.NoError(t, test.ExecError(err))
	for _, want := range []string{
		"graph path {",
		`"person/144" -- "movie/93779"`,
		`label="The Princess Bride (1987)"`,
		`"person/102"`,
	} {
		assert.Contains(t, string(out), want)
	}
}

func TestMain_path_ambiguous(t *testing.T) {
	cmd := command(t, "path", "Kevin Bacon", "Tom Hanks")
	cmd.Args = slicesWithout(cmd.Args, "--panic")
	cmd.Stderr = nil
	out, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "ID: 102, Name: Kevin Bacon, Birth: 1958")
	assert.Contains(t, string(out), "ID: 9999, Name: Kevin Bacon")
	assert.Contains(t, string(out), `Error: ambiguous name "Kevin Bacon"`)
}

func TestMain_path_notFound(t *testing.T) {
	cmd := command(t, "path", "Nobody", "102")
	cmd.Args = slicesWithout(cmd.Args, "--panic")
	cmd.Stderr = nil
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), `Error: person not found: "Nobody"`)
}

func TestMain_people(t *testing.T) {
	out, err := command(t, "people", "KEVIN BACON").Output()
	require.NoError(t, test.ExecError(err))
	assert.Equal(t, "ID: 102, Name: Kevin Bacon, Birth: 1958\nID: 9999, Name: Kevin Bacon, Birth:", strings.TrimSpace(string(out)))

	out, err = command(t, "-o", "yaml", "people", "tom hanks").Output()
	require.NoError(t, test.ExecError(err))
	var got []rest.PersonRef
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, []rest.PersonRef{{ID: "158", Name: "Tom Hanks", Birth: 1956}}, got)
}

func TestMain_movies(t *testing.T) {
	out, err := command(t, "movies", "Tom Hanks").Output()
	require.NoError(t, test.ExecError(err))
	assert.Equal(t, "ID: 109830, Title: Forrest Gump, Year: 1994\nID: 112384, Title: Apollo 13, Year: 1995", strings.TrimSpace(string(out)))

	out, err = command(t, "-o", "json", "movies", "914612").Output()
	require.NoError(t, test.ExecError(err))
	assert.JSONEq(t, `{"id":"914612","name":"Emma Watson","birth":1990,"movies":[]}`, string(out))
}

func TestMain_neighbours(t *testing.T) {
	out, err := command(t, "-o", "json", "neighbours", "Cary Elwes").Output()
	require.NoError(t, test.ExecError(err))
	assert.JSONEq(t, `{
  "people": [
    {"id":"144","name":"Cary Elwes","birth":1962},
    {"id":"1597","name":"Mandy Patinkin","birth":1952},
    {"id":"1697","name":"Chris Sarandon","birth":1942},
    {"id":"705","name":"Robin Wright","birth":1966}
  ],
  "movies": [{"id":"93779","title":"The Princess Bride","year":1987}]
}`, string(out))

	out, err = command(t, "neighbours", "144", "2").Output()
	require.NoError(t, test.ExecError(err))
	assert.Contains(t, string(out), "graph neighbours {")
	assert.Contains(t, string(out), `"person/158"`)
	assert.NotContains(t, string(out), `"person/102"`)
}

func TestMain_stats(t *testing.T) {
	out, err := command(t, "stats").Output()
	require.NoError(t, test.ExecError(err))
	assert.Equal(t, `people:     17
movies:     5
stars:      20
dropped:    2
components: 3
largest:    15`, strings.TrimSpace(string(out)))

	out, err = command(t, "-o", "json", "stats").Output()
	require.NoError(t, test.ExecError(err))
	assert.JSONEq(t, `{"people":17,"movies":5,"stars":20,"dropped":2,"components":3,"largest":15}`, string(out))
}

func TestMain_output_unsupported(t *testing.T) {
	cmd := command(t, "-o", "dot", "people", "Tom Hanks")
	cmd.Args = slicesWithout(cmd.Args, "--panic")
	cmd.Stderr = nil
	out, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "invalid output type for this command: dot")
}

func slicesWithout(s []string, x string) []string {
	var r []string
	for _, v := range s {
		if v != x {
			r = append(r, v)
		}
	}
	return r
}
