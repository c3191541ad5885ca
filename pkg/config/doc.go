// Package config holds the run configuration of retoken.
//
// Nothing here is read from the environment, flags or files. The root
// directory, the extension and the replacement table are fixed at build time;
// Load assembles them from constants and the compiled-in palette table and
// validates the result.
//
// 🔍 Example:
//
//	cfg, err := config.Load(ctx)
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg) // ./components/**/*.tsx (blue-to-green, 28 rules)
package config
