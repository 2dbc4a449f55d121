package cmd

import (
	"fmt"
	"strings"

	"github.com/tsdownlevel/tsdownlevel/internal/compat"
)

func parseTarget(s string) (compat.Target, error) {
	switch strings.ToLower(s) {
	case "es3":
		return compat.ES3, nil
	case "es5":
		return compat.ES5, nil
	case "es2015", "es6":
		return compat.ES2015, nil
	case "es2016":
		return compat.ES2016, nil
	case "es2017":
		return compat.ES2017, nil
	case "es2018":
		return compat.ES2018, nil
	case "es2019":
		return compat.ES2019, nil
	case "es2020":
		return compat.ES2020, nil
	case "es2021":
		return compat.ES2021, nil
	case "es2022":
		return compat.ES2022, nil
	case "esnext":
		return compat.ESNext, nil
	}
	return 0, fmt.Errorf("unrecognized --target %q", s)
}

func parseModule(s string) (compat.ModuleFormat, error) {
	switch strings.ToLower(s) {
	case "esm", "es6":
		return compat.ESM, nil
	case "cjs", "commonjs":
		return compat.CommonJS, nil
	case "amd":
		return compat.AMD, nil
	case "umd":
		return compat.UMD, nil
	case "system", "systemjs":
		return compat.SystemJS, nil
	}
	return 0, fmt.Errorf("unrecognized --module %q", s)
}
