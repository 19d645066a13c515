// Package testing provides a widget testing harness for Relay trees.
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := relaytest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    tester.Tap(relaytest.ByKey("increment"))
//	    tester.Pump()
//
//	    if !tester.Find(relaytest.ByText("Count: 1")).Exists() {
//	        t.Error("expected 'Count: 1' text")
//	    }
//	}
//
// Pump runs exactly one re-evaluation pass over the dirty elements, which
// makes notification cycles observable step by step.
//
// The harness has no *testing.T dependency in its core methods, so it
// doubles as a headless driver for demo hosts.
package testing
