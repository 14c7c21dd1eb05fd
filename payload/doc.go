// Package payload generates the synthetic JSON documents used by the
// extraction benchmarks.
//
// Every document has the same shape:
//
//	{
//	        "id": "demo-deserialize-max",
//	        "values": [
//	            <n1>,
//	<n2>,
//	...
//	        ]
//	    }
//
// The values are full-width random uint64 numbers in decimal form, joined
// with ",\n". Requesting a size of N yields N-1 values; callers that need an
// exact element count should use FromValues.
//
// # Randomness
//
// Generate draws from the process-wide math/rand/v2 source unless a source is
// injected with WithSource. Injecting a fixed-seed source makes documents
// reproducible:
//
//	doc, err := payload.Generate(1000, payload.WithSource(rand.NewPCG(1, 2)))
package payload
