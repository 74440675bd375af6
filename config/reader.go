package config

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"reflect"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/hobbyjobs/arm-navigation/logging"
)

// Versioning variables which are replaced by LD flags.
var (
	Version     = ""
	GitRevision = ""
)

// Read reads a job from the given file. Environment variables in the file are expanded first.
func Read(filePath string, logger logging.Logger) (*Job, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read job file %q", filePath)
	}
	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a job from the given reader and specifies where, if applicable, the file the
// reader originated from. The returned job has been validated.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Job, error) {
	var attributes map[string]interface{}
	if err := json.NewDecoder(r).Decode(&attributes); err != nil {
		return nil, errors.Wrapf(err, "failed to decode job from json")
	}
	job, err := decodeJob(attributes)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode job")
	}
	if err := job.Validate("job"); err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debugw("read job",
			"path", originalPath,
			"joints", len(job.Joints),
			"waypoints", len(job.Waypoints),
			"degrees", job.Degrees,
		)
	}
	return job, nil
}

func decodeJob(attributes map[string]interface{}) (*Job, error) {
	var job Job
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &job,
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(wholeNumberHook),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, err
	}
	return &job, nil
}

// wholeNumberHook rejects json numbers with a fractional part bound for integer fields, which
// mapstructure would otherwise truncate.
func wholeNumberHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
		return data, nil
	}
	value, ok := data.(float64)
	if !ok {
		return data, nil
	}
	if math.IsInf(value, 0) || value != math.Trunc(value) {
		return nil, errors.Errorf("expected a whole number but got %v", value)
	}
	return data, nil
}
