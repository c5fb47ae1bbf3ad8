/*
Package config loads adapter registrations and an optional workspace for rebind.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +-------+-------+-------+-------+
	   |       |               |       |
	+--+--+ +--+--+        +---+--+ +--+---+
	| JSON| | YAML|        |  HCL | | TOML |
	+-----+ +-----+        +------+ +------+

🎯 Purpose:
- Declares the adapters, their schemes and transfer capabilities
- Declares alias schemes (alias -> canonical)
- Optionally describes open documents and windows to seed a directory

🔄 Flow:
1. Env (REBIND_CONFIG, REBIND_DEBUG, REBIND_CWD) adds defaults
2. LoadAll parses every file concurrently, picking a parser by extension
3. Files merge in the order given, later files win
4. Validate checks the merged result, Registry builds the adapter registry

🔍 Example:

	adapter "files" {
		scheme      = "oil"
		raw_paths   = true
		transfer_to = ["trash", "ssh-*"]
	}

	adapter "trash" {
		scheme = "oil-trash"
	}

	aliases = {
		file = "oil"
	}

	workspace {
		cwd = env.HOME

		document "oil:///home/u/a.txt" {
			dirty   = true
			lines   = ["unsaved"]
			windows = 1
		}
	}
*/
package config
