// Package face binds business-meaningful names to UI controls.
//
// A Registry maps names to faces: either a Locator (structured lookup data)
// or an Expression (a function of the base element and call arguments). A
// Scope pairs a registry with a driver and a base element and resolves
// names against them:
//
//	reg := face.NewRegistry()
//	_ = reg.Register("query", face.Locate(driver.TextField, driver.ByName, "q"))
//	_ = reg.Register("search", face.Locate(driver.Button, driver.ByName, "btnG"))
//
//	page := face.New(reg, face.WithDriver(d))
//	_ = page.Spray(ctx, face.Fields{{Name: "query", Value: "golang"}})
//
// Names that are not registered fall through to the base element's own
// operations (see Scope.Call). Everything is synchronous; a Scope must not
// be shared across goroutines.
package face
