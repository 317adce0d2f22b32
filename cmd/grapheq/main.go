// grapheq is a CLI front-end for the constraint-resolution engine, driving
// the built-in beam-theory catalogue.
package main

func main() {
	Execute()
}
