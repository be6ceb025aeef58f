package layout

// Built-in wall layouts. Scripts define layout(rows, cols) and return a list
// of {x=, y=} tables with zero-based coordinates.
var builtinPatterns = []Pattern{
	{
		Name: "column-gap",
		Definition: `
			function layout(rows, cols)
				local walls = {}
				local x = math.floor(cols / 2)
				for y = 1, rows - 1 do
					table.insert(walls, {x = x, y = y})
				end
				return walls
			end
		`,
	},
	{
		Name: "column",
		Definition: `
			function layout(rows, cols)
				local walls = {}
				local x = math.floor(cols / 2)
				for y = 0, rows - 1 do
					table.insert(walls, {x = x, y = y})
				end
				return walls
			end
		`,
	},
	{
		Name: "border",
		Definition: `
			function layout(rows, cols)
				local walls = {}
				for x = 0, cols - 1 do
					table.insert(walls, {x = x, y = 0})
					table.insert(walls, {x = x, y = rows - 1})
				end
				for y = 1, rows - 2 do
					table.insert(walls, {x = 0, y = y})
					table.insert(walls, {x = cols - 1, y = y})
				end
				return walls
			end
		`,
	},
	{
		Name: "scatter",
		Definition: `
			function layout(rows, cols)
				local walls = {}
				for y = 0, rows - 1 do
					for x = 0, cols - 1 do
						if (x * 7 + y * 13) % 5 == 0 then
							table.insert(walls, {x = x, y = y})
						end
					end
				end
				return walls
			end
		`,
	},
	{
		Name: "serpentine",
		Definition: `
			function layout(rows, cols)
				local walls = {}
				local band = 0
				for y = 1, rows - 1, 2 do
					local gap = cols - 1
					if band % 2 == 1 then
						gap = 0
					end
					for x = 0, cols - 1 do
						if x ~= gap then
							table.insert(walls, {x = x, y = y})
						end
					end
					band = band + 1
				end
				return walls
			end
		`,
	},
}
