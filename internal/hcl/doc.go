// Package hcl loads the optional HCL settings file. It is responsible for
// parsing, validating block and attribute names, and converting attribute
// values through cty into Go strings.
//
// A settings file looks like:
//
//	log {
//	  level  = "debug"
//	  format = "text"
//	}
//
//	serve {
//	  address = ":8080"
//	}
//
// Every block and attribute is optional. Unknown names are errors.
package hcl
