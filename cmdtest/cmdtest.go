// Package cmdtest runs in-process CLI tests described in YAML files.
//
// Each file holds a list of cases (either at the top level or under a
// "tests" key). A case names a registered command, its arguments, extra
// environment variables and files, and the expected stdout, stderr and exit
// code. Running with update set rewrites the expectations in place.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// dirPlaceholder in args, env values and file contents is replaced with the
// case's scratch directory.
const dirPlaceholder = "$DIR"

// TestData is a single case.
type TestData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	// Files are written into the scratch directory before the command runs.
	Files  map[string]string `yaml:"files"`
	Expect struct {
		Stdout   string `yaml:"stdout"`
		Stderr   string `yaml:"stderr"`
		ExitCode int    `yaml:"exitCode"`
	} `yaml:"expect"`
}

// TestGroup is the content of one YAML file.
type TestGroup struct {
	Name  string
	Tests []TestData `yaml:"tests"`
}

// TestSuite is every group found under a directory.
type TestSuite struct {
	groups   []*TestGroup
	commands map[string]func() int
	backings map[*TestGroup]*groupBacking
	mu       sync.Mutex
}

// groupBacking keeps the parsed YAML tree so updates preserve comments
// and ordering.
type groupBacking struct {
	path      string
	root      *yaml.Node
	testNodes []*yaml.Node
}

// Read loads every .yaml/.yml file under dir.
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{
		commands: make(map[string]func() int),
		backings: make(map[*TestGroup]*groupBacking),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		group, backing, err := readGroup(path)
		if err != nil {
			return err
		}
		suite.groups = append(suite.groups, group)
		suite.backings[group] = backing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readGroup(path string) (*TestGroup, *groupBacking, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read %s", path)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, nil, errors.Wrapf(err, "parse %s", path)
	}
	if len(root.Content) == 0 {
		return nil, nil, errors.Newf("%s: empty yaml", path)
	}
	testsNode, err := locateTestsNode(root.Content[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s", path)
	}

	group := &TestGroup{Name: filepath.Base(path)}
	if err := testsNode.Decode(&group.Tests); err != nil {
		return nil, nil, errors.Wrapf(err, "%s: decode tests", path)
	}
	return group, &groupBacking{path: path, root: &root, testNodes: testsNode.Content}, nil
}

// Register binds the cmd name used in YAML to an entry point returning the
// exit code.
func (s *TestSuite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case as a subtest of t.
func (s *TestSuite) Run(t *testing.T) {
	s.RunWithUpdate(t, false)
}

// RunWithUpdate executes every case; with update set, mismatching
// expectations are written back to their files instead of failing.
func (s *TestSuite) RunWithUpdate(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		t.Run(group.Name, func(t *testing.T) {
			for i := range group.Tests {
				t.Run(caseName(group, i), func(t *testing.T) {
					s.runSingleTest(t, group, i, update)
				})
			}
		})
	}
}

func caseName(group *TestGroup, idx int) string {
	if name := group.Tests[idx].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Case-%d", idx)
}

func (s *TestSuite) runSingleTest(t *testing.T, group *TestGroup, idx int, update bool) {
	test := &group.Tests[idx]
	runFunc, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("Command '%s' not registered", test.Cmd)
	}

	dir := t.TempDir()
	expand := func(v string) string { return strings.ReplaceAll(v, dirPlaceholder, dir) }
	for name, content := range test.Files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(expand(content)), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	for k, v := range test.Env {
		t.Setenv(k, expand(v))
	}
	args := []string{test.Cmd}
	for _, a := range test.Args {
		args = append(args, expand(a))
	}

	stdout, stderr, exitCode := capture(t, args, runFunc)
	stdout = strings.ReplaceAll(stdout, dir, dirPlaceholder)
	stderr = strings.ReplaceAll(stderr, dir, dirPlaceholder)

	changes := s.applyExpect(t, group, idx, stdout, stderr, exitCode, update)
	if update && len(changes) > 0 {
		if err := s.persistGroup(group); err != nil {
			t.Fatalf("persist %s: %v", s.backings[group].path, err)
		}
		t.Logf("cmdtest: updated %s (%s): %s", s.backings[group].path, caseName(group, idx), strings.Join(changes, "; "))
	}
}

// capture runs run with os.Args set to args and os.Stdout/os.Stderr
// redirected to pipes, restoring all three afterwards.
func capture(t *testing.T, args []string, run func() int) (stdout, stderr string, exitCode int) {
	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Args, os.Stdout, os.Stderr = args, wOut, wErr

	var wg sync.WaitGroup
	drain := func(r io.Reader, dst *string) {
		defer wg.Done()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
	}
	wg.Add(2)
	go drain(rOut, &stdout)
	go drain(rErr, &stderr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				exitCode = -1
			}
		}()
		exitCode = run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()
	os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	return stdout, stderr, exitCode
}

func (s *TestSuite) applyExpect(t *testing.T, group *TestGroup, idx int,
	stdout, stderr string, exitCode int, update bool) []string {
	test := &group.Tests[idx]
	backing := s.backings[group]
	if backing == nil {
		t.Fatalf("no yaml backing for group %s", group.Name)
	}
	expectNode := ensureMapValue(backing.testNodes[idx], "expect")

	var changes []string
	if exitCode != test.Expect.ExitCode {
		if update {
			test.Expect.ExitCode = exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), exitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", exitCode))
		} else {
			t.Errorf("ExitCode mismatch:\nExpected: %d\nActual:   %d", test.Expect.ExitCode, exitCode)
		}
	}
	if stdout != test.Expect.Stdout {
		if update {
			test.Expect.Stdout = stdout
			setStringScalar(ensureMapValue(expectNode, "stdout"), stdout)
			changes = append(changes, fmt.Sprintf("stdout=%q", summarizeValue(stdout)))
		} else {
			t.Errorf("Stdout mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stdout, stdout)
		}
	}
	if stderr != test.Expect.Stderr {
		if update {
			test.Expect.Stderr = stderr
			setStringScalar(ensureMapValue(expectNode, "stderr"), stderr)
			changes = append(changes, fmt.Sprintf("stderr=%q", summarizeValue(stderr)))
		} else {
			t.Errorf("Stderr mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stderr, stderr)
		}
	}
	return changes
}

func (s *TestSuite) persistGroup(group *TestGroup) error {
	backing := s.backings[group]
	if backing == nil {
		return errors.Newf("no yaml backing for group %s", group.Name)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(backing.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(backing.path, buf.Bytes(), 0o644)
}

func locateTestsNode(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.MappingNode:
		if val := findMapValue(doc, "tests"); val != nil {
			if val.Kind != yaml.SequenceNode {
				return nil, errors.New("tests must be a sequence")
			}
			return val, nil
		}
		return nil, errors.New("missing 'tests' key")
	case yaml.SequenceNode:
		return doc, nil
	default:
		return nil, errors.Newf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ""}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	// A lone line break would be written as an empty literal block.
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	} else {
		node.Style = 0
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}

func summarizeValue(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}

// Names lists the registered command names, sorted.
func (s *TestSuite) Names() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
