/*
Package adapter defines the registry of resource adapters for rebind.

	            +-------------+
	            |  Registry   |
	            |  (schemes)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   files   | | trash  | |   ssh   |
	|  oil://   | | ...    | | ...     |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Maps a url scheme to the adapter that owns it
- Declares which adapters can exchange resources directly
- Enumerates the alternate names a resource may be open under

🔄 Flow:
1. Registrations are built from config at startup
2. NewRegistry (or Init for the process-wide default) validates them
3. Lookups resolve scheme, url, alias scheme or bare path to an adapter
4. Alternates/AlternatePairs feed the identity rebinder

📝 Design Philosophy:
The registry never changes after construction. Alias forms are an ordered list of
resolvers rather than ad hoc string branching, so the resolution order is visible:

	canonical    oil:///home/u/a.txt
	scheme remap file:///home/u/a.txt   (file -> oil)
	raw path     /home/u/a.txt          (adapter owns raw paths)

🔍 Example:

	reg, err := adapter.NewRegistry([]adapter.Registration{
		{Name: "files", Scheme: "oil", RawPaths: true, TransferTo: []string{"trash"}},
		{Name: "trash", Scheme: "oil-trash"},
	}, adapter.WithSchemeRemap(map[string]string{"file": "oil"}))

	a, err := reg.GetAdapterForURL(ctx, "oil:///home/u/a.txt")
*/
package adapter
