// Command gqlrun parses, validates, and executes a single GraphQL query against a small built-in
// demo schema, printing the resulting JSON response. It exists primarily to exercise the execution
// engine end-to-end from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ccbrown/gqlcore/graphql"
)

func run(stdout *os.File, args []string, logger logrus.FieldLogger) error {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)

	queryPath := flags.StringP("query", "q", "", "path to the query document, or - for stdin")
	variablesJSON := flags.String("variables", "{}", "JSON-encoded variable values")
	operationName := flags.StringP("operation", "o", "", "operation name, if the document defines more than one")
	costLimit := flags.Int("cost-limit", -1, "maximum allowed operation cost, or -1 for no limit")
	verbose := flags.BoolP("verbose", "v", false, "log execution details to stderr")
	listTypes := flags.Bool("list-types", false, "print the demo schema's registered type names and exit")

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if *verbose {
		logger.(*logrus.Logger).SetLevel(logrus.DebugLevel)
	}

	if *listTypes {
		schema, err := demoSchema()
		if err != nil {
			return errors.Wrap(err, "error building demo schema")
		}
		for _, name := range schema.NamedTypeNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if *queryPath == "" {
		return fmt.Errorf("the --query flag is required")
	}

	var queryBytes []byte
	var err error
	if *queryPath == "-" {
		queryBytes, err = ioutil.ReadAll(os.Stdin)
	} else {
		queryBytes, err = ioutil.ReadFile(*queryPath)
	}
	if err != nil {
		return errors.Wrap(err, "error reading query")
	}

	var variableValues map[string]interface{}
	if err := json.Unmarshal([]byte(*variablesJSON), &variableValues); err != nil {
		return errors.Wrap(err, "error parsing --variables")
	}

	schema, err := demoSchema()
	if err != nil {
		return errors.Wrap(err, "error building demo schema")
	}

	logger.WithField("operation", *operationName).Debug("parsing and validating query")

	var rules []graphql.ValidatorRule
	if *costLimit >= 0 {
		var actualCost int
		rules = append(rules, graphql.ValidateCost(*operationName, variableValues, *costLimit, &actualCost, graphql.FieldCost{Resolver: 1}))
		defer func() {
			logger.WithField("cost", actualCost).Debug("operation cost")
		}()
	}

	doc, parseOrValidationErrs := graphql.ParseAndValidate(string(queryBytes), schema, rules...)
	if len(parseOrValidationErrs) > 0 {
		return writeResponse(stdout, &graphql.Response{Errors: parseOrValidationErrs})
	}

	req := &graphql.Request{
		Document:       doc,
		Schema:         schema,
		OperationName:  *operationName,
		VariableValues: variableValues,
	}

	logger.Debug("executing query")
	resp := graphql.Execute(req)
	return writeResponse(stdout, resp)
}

func writeResponse(w *os.File, resp *graphql.Response) error {
	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error marshaling response")
	}
	fmt.Fprintln(w, string(b))
	if resp.Err() != nil {
		return resp.Err()
	}
	return nil
}

func main() {
	logger := logrus.New()
	if err := run(os.Stdout, os.Args, logger); err != nil {
		logger.WithError(err).Error("gqlrun failed")
		os.Exit(1)
	}
}
