package quiz

// chessQuestions is the built-in question pool. Ids are stable: they are persisted in
// active_quizzes and quiz_histories, so entries may be appended but never renumbered.
var chessQuestions = []Question{
	{ID: 1, Prompt: "How many squares are on a chessboard?", Answer: "64", Reward: 5},
	{ID: 2, Prompt: "Which piece moves in an L-shape?", Answer: "Knight", Aliases: []string{"horse"}, Reward: 10},
	{ID: 3, Prompt: "What is the term for attacking the king?", Answer: "Check", Reward: 10},
	{ID: 4, Prompt: "What is the final aim of chess?", Answer: "Checkmate", Aliases: []string{"mate"}, Reward: 15},
	{ID: 5, Prompt: "Which move lets king and rook move together?", Answer: "Castling", Aliases: []string{"castle"}, Reward: 15},
	{ID: 6, Prompt: "Which color moves first?", Answer: "White", Reward: 5},
	{ID: 7, Prompt: "Which piece moves any number of squares diagonally?", Answer: "Bishop", Reward: 10},
	{ID: 8, Prompt: "Which piece combines rook and bishop movement?", Answer: "Queen", Reward: 15},
	{ID: 9, Prompt: "Which piece moves forward and captures diagonally?", Answer: "Pawn", Reward: 10},
	{ID: 10, Prompt: "What is the special pawn capture immediately after a two-step move called?", Answer: "En passant", Aliases: []string{"enpassant", "en passant capture"}, Reward: 15},
	{ID: 11, Prompt: "What is promoting a pawn to a queen called?", Answer: "Promotion", Aliases: []string{"pawn promotion"}, Reward: 10},
	{ID: 12, Prompt: "Name the opening starting with 1. e4 e5 2. Nf3 Nc6 3. Bb5.", Answer: "Ruy Lopez", Aliases: []string{"spanish"}, Reward: 15},
	{ID: 13, Prompt: "Name the opening 1. d4 Nf6 2. c4 g6.", Answer: "Indian Defense", Aliases: []string{"kings indian", "queen's indian"}, Reward: 15},
	{ID: 14, Prompt: "What is a draw due to a repeated position three times called?", Answer: "Threefold repetition", Aliases: []string{"threefold"}, Reward: 15},
	{ID: 15, Prompt: "What is a draw when no legal moves and king is not in check?", Answer: "Stalemate", Reward: 15},
	{ID: 16, Prompt: "What is the 50-move rule based on?", Answer: "No pawn move or capture", Aliases: []string{"fifty move rule"}, Reward: 15},
	{ID: 17, Prompt: "What does FIDE stand for?", Answer: "International Chess Federation", Aliases: []string{"fide"}, Reward: 10},
	{ID: 18, Prompt: "Who is known as the 'Mozart of chess'?", Answer: "Magnus Carlsen", Aliases: []string{"carlsen"}, Reward: 10},
	{ID: 19, Prompt: "Who wrote 'My System'?", Answer: "Aron Nimzowitsch", Aliases: []string{"nimzowitsch"}, Reward: 15},
	{ID: 20, Prompt: "Which opening starts with 1. e4 c5?", Answer: "Sicilian Defense", Aliases: []string{"sicilian"}, Reward: 15},
	{ID: 21, Prompt: "Which opening starts with 1. d4 d5 2. c4?", Answer: "Queen's Gambit", Aliases: []string{"queens gambit"}, Reward: 15},
	{ID: 22, Prompt: "Name the tactic: a move that creates two simultaneous threats.", Answer: "Fork", Reward: 10},
	{ID: 23, Prompt: "Name the tactic: blocking a square to cut off defense.", Answer: "Interference", Reward: 10},
	{ID: 24, Prompt: "Name the tactic: sacrificing material to open lines.", Answer: "Sacrifice", Reward: 10},
	{ID: 25, Prompt: "Name the tactic: winning material by trapping a piece.", Answer: "Trap", Reward: 10},
	{ID: 26, Prompt: "Name the tactic: attacking the king with a forcing move.", Answer: "Check", Reward: 5},
	{ID: 27, Prompt: "Name the tactic: pinning a piece to a more valuable one.", Answer: "Pin", Reward: 10},
	{ID: 28, Prompt: "Name the tactic: a piece behind another is attacked after the front moves.", Answer: "Skewer", Reward: 10},
	{ID: 29, Prompt: "Name the tactic: decoying a piece onto a bad square.", Answer: "Decoy", Reward: 10},
	{ID: 30, Prompt: "Name the tactic: removing the guard of a piece.", Answer: "Deflection", Aliases: []string{"remove the guard"}, Reward: 10},
	{ID: 31, Prompt: "Which endgame is drawn with only king vs king?", Answer: "King vs King", Aliases: []string{"bare kings"}, Reward: 5},
	{ID: 32, Prompt: "What is opposition in king and pawn endgames?", Answer: "Kings facing each other with a square in between", Aliases: []string{"opposition"}, Reward: 15},
	{ID: 33, Prompt: "What is zugzwang?", Answer: "Being forced to move to a worse position", Reward: 15},
	{ID: 34, Prompt: "Which piece is worth about 9 points?", Answer: "Queen", Reward: 5},
	{ID: 35, Prompt: "Which piece is worth about 5 points?", Answer: "Rook", Reward: 5},
	{ID: 36, Prompt: "Which piece is worth about 3 points (two types)?", Answer: "Knight and Bishop", Aliases: []string{"minor pieces"}, Reward: 10},
	{ID: 37, Prompt: "What is the term for two bishops on adjacent diagonals", Answer: "Bishop pair", Aliases: []string{"two bishops"}, Reward: 10},
	{ID: 38, Prompt: "What is a fianchetto?", Answer: "Developing bishop to b2/g2/b7/g7", Reward: 10},
	{ID: 39, Prompt: "Name the tactic: discovered attack on a piece or king.", Answer: "Discovered attack", Reward: 10},
	{ID: 40, Prompt: "Name the tactic: discovered check.", Answer: "Discovered check", Reward: 10},
	{ID: 41, Prompt: "What is a double attack?", Answer: "Two threats at once", Reward: 10},
	{ID: 42, Prompt: "What is perpetual check?", Answer: "Repeated checks forcing a draw", Reward: 15},
	{ID: 43, Prompt: "What is a passed pawn?", Answer: "Pawn with no opposing pawns blocking its path", Reward: 10},
	{ID: 44, Prompt: "What is an isolated pawn?", Answer: "Pawn with no same-color pawns on adjacent files", Reward: 10},
	{ID: 45, Prompt: "What is a backward pawn?", Answer: "Pawn behind others and cannot advance safely", Reward: 10},
	{ID: 46, Prompt: "What is a doubled pawn?", Answer: "Two pawns on same file", Reward: 10},
	{ID: 47, Prompt: "What is a gambit?", Answer: "Sacrificing material for initiative", Reward: 10},
	{ID: 48, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bc4.", Answer: "Italian Game", Aliases: []string{"giuoco piano"}, Reward: 15},
	{ID: 49, Prompt: "Name the opening: 1. e4 e5 2. Nf3 d6.", Answer: "Philidor Defense", Aliases: []string{"philidor"}, Reward: 15},
	{ID: 50, Prompt: "Name the opening: 1. e4 e5 2. f4.", Answer: "King's Gambit", Aliases: []string{"kings gambit"}, Reward: 15},
	{ID: 51, Prompt: "Name the opening: 1. d4 d5 2. Nf3 Nf6 3. c4.", Answer: "Queen's Gambit Declined", Aliases: []string{"qgd"}, Reward: 15},
	{ID: 52, Prompt: "Name the opening: 1. d4 f5.", Answer: "Dutch Defense", Aliases: []string{"dutch"}, Reward: 15},
	{ID: 53, Prompt: "Name the opening: 1. e4 e6.", Answer: "French Defense", Aliases: []string{"french"}, Reward: 15},
	{ID: 54, Prompt: "Name the opening: 1. e4 d6.", Answer: "Pirc Defense", Aliases: []string{"pirc"}, Reward: 15},
	{ID: 55, Prompt: "Name the opening: 1. e4 c6.", Answer: "Caro-Kann Defense", Aliases: []string{"caro kann"}, Reward: 15},
	{ID: 56, Prompt: "Name the opening: 1. e4 d5.", Answer: "Scandinavian Defense", Aliases: []string{"center counter"}, Reward: 15},
	{ID: 57, Prompt: "Name the opening: 1. e4 b6.", Answer: "Owen's Defense", Aliases: []string{"owens"}, Reward: 15},
	{ID: 58, Prompt: "Name the opening: 1. e4 g6.", Answer: "Modern Defense", Aliases: []string{"modern"}, Reward: 15},
	{ID: 59, Prompt: "Name the opening: 1. d4 Nf6 2. c4 e6.", Answer: "Nimzo-Indian Defense", Aliases: []string{"nimzo indian"}, Reward: 15},
	{ID: 60, Prompt: "Name the opening: 1. d4 Nf6 2. c4 g6 3. Nc3 Bg7.", Answer: "King's Indian Defense", Aliases: []string{"kings indian"}, Reward: 15},
	{ID: 61, Prompt: "Name the opening: 1. d4 d5 2. c4 c6.", Answer: "Slav Defense", Aliases: []string{"slav"}, Reward: 15},
	{ID: 62, Prompt: "Name the opening: 1. d4 d5 2. c4 e6.", Answer: "Queen's Gambit Declined", Aliases: []string{"qgd"}, Reward: 15},
	{ID: 63, Prompt: "Name the opening: 1. c4.", Answer: "English Opening", Aliases: []string{"english"}, Reward: 15},
	{ID: 64, Prompt: "Name the opening: 1. Nf3.", Answer: "Reti Opening", Aliases: []string{"reti"}, Reward: 15},
	{ID: 65, Prompt: "Name the opening: 1. b3.", Answer: "Larsen's Opening", Aliases: []string{"nimzo larsen"}, Reward: 15},
	{ID: 66, Prompt: "Name the opening: 1. g3.", Answer: "Hungarian Opening", Aliases: []string{"kings fianchetto"}, Reward: 10},
	{ID: 67, Prompt: "Which checkmate uses two rooks to trap the king on a rank or file?", Answer: "Ladder mate", Aliases: []string{"rook roller"}, Reward: 15},
	{ID: 68, Prompt: "Which checkmate uses queen and bishop on h7/h2?", Answer: "Scholar's mate", Aliases: []string{"scholars"}, Reward: 10},
	{ID: 69, Prompt: "Which checkmate pattern uses back rank weakness?", Answer: "Back rank mate", Reward: 10},
	{ID: 70, Prompt: "Which mate involves bishop and knight coordinating?", Answer: "Bishop and knight mate", Reward: 15},
	{ID: 71, Prompt: "Which mate involves smothered king with a knight?", Answer: "Smothered mate", Reward: 15},
	{ID: 72, Prompt: "Which mate involves sacrifice on h7 followed by Ng5/Qh5?", Answer: "Greek gift", Aliases: []string{"greek gift sacrifice"}, Reward: 15},
	{ID: 73, Prompt: "What is a blockade?", Answer: "Placing a piece to stop an enemy pawn advance", Reward: 10},
	{ID: 74, Prompt: "What is prophylaxis?", Answer: "Preventing opponent's plan", Reward: 10},
	{ID: 75, Prompt: "What is tempo?", Answer: "A unit of time for a move advantage", Reward: 10},
	{ID: 76, Prompt: "What is initiative?", Answer: "Ability to make threats forcing responses", Reward: 10},
	{ID: 77, Prompt: "What is a zwischenzug?", Answer: "An in-between move", Aliases: []string{"in-between"}, Reward: 15},
	{ID: 78, Prompt: "What is a battery?", Answer: "Two pieces lined up on a file, rank, or diagonal", Reward: 10},
	{ID: 79, Prompt: "What is a majority attack with pawns?", Answer: "Pawn majority push", Reward: 10},
	{ID: 80, Prompt: "What is the square of the pawn rule?", Answer: "King reaches square if inside pawn's square", Reward: 15},
	{ID: 81, Prompt: "What is triangulation in endgames?", Answer: "Wasting moves to gain opposition", Reward: 15},
	{ID: 82, Prompt: "What is underpromotion?", Answer: "Promoting to a piece other than queen", Reward: 15},
	{ID: 83, Prompt: "What is stalemate tactic for a draw?", Answer: "Forcing no legal move without check", Reward: 15},
	{ID: 84, Prompt: "What is the main idea of the London System?", Answer: "Setup with d4, Nf3, Bf4, e3, c3", Aliases: []string{"london system"}, Reward: 15},
	{ID: 85, Prompt: "Which opening starts with 1. d4 and Bf4 early?", Answer: "London System", Aliases: []string{"london"}, Reward: 15},
	{ID: 86, Prompt: "Who was the first official World Chess Champion?", Answer: "Wilhelm Steinitz", Aliases: []string{"steinitz"}, Reward: 10},
	{ID: 87, Prompt: "Who defeated Kasparov in 2000 to become World Champion?", Answer: "Vladimir Kramnik", Aliases: []string{"kramnik"}, Reward: 10},
	{ID: 88, Prompt: "What is castling long?", Answer: "Castling queenside", Aliases: []string{"queenside castling", "o-o-o"}, Reward: 10},
	{ID: 89, Prompt: "What is castling short?", Answer: "Castling kingside", Aliases: []string{"kingside castling", "o-o"}, Reward: 10},
	{ID: 90, Prompt: "What is the en passant condition?", Answer: "Capture only immediately after a two-step pawn move", Reward: 15},
	{ID: 91, Prompt: "What does ELO measure?", Answer: "Player rating strength", Aliases: []string{"elo rating"}, Reward: 10},
	{ID: 92, Prompt: "What is the term for a line starting with a12? (illegal)", Answer: "Illegal move", Reward: 5},
	{ID: 93, Prompt: "What is algebraic notation for checkmate?", Answer: "#", Aliases: []string{"hash"}, Reward: 5},
	{ID: 94, Prompt: "What is algebraic notation for check?", Answer: "+", Aliases: []string{"plus"}, Reward: 5},
	{ID: 95, Prompt: "What is the term for moving the same piece twice in the opening unnecessarily?", Answer: "Loss of tempo", Reward: 10},
	{ID: 96, Prompt: "What is the doel of development?", Answer: "Activate pieces quickly", Aliases: []string{"development"}, Reward: 10},
	{ID: 97, Prompt: "Where should you usually place rooks?", Answer: "Open files", Reward: 10},
	{ID: 98, Prompt: "What is a half-open file?", Answer: "File with no pawn of one side", Reward: 10},
	{ID: 99, Prompt: "What is the center in chess?", Answer: "Squares e4, d4, e5, d5", Reward: 10},
	{ID: 100, Prompt: "What is a checkmate with queen and king called?", Answer: "Basic mate", Aliases: []string{"queen mate"}, Reward: 10},
	{ID: 101, Prompt: "What is a checkmate with rook and king called?", Answer: "Rook mate", Reward: 10},
	{ID: 102, Prompt: "What is the tactic of sacrificing an exchange called?", Answer: "Exchange sacrifice", Aliases: []string{"sacrifice exchange"}, Reward: 15},
	{ID: 103, Prompt: "What is the tactic of doubling rooks on a file?", Answer: "Rook battery", Reward: 10},
	{ID: 104, Prompt: "What is the tactic of opening a diagonal for a bishop?", Answer: "Pawn break", Reward: 10},
	{ID: 105, Prompt: "Name the tactic: quiet move setting up a tactic next move.", Answer: "Quiet move", Reward: 10},
	{ID: 106, Prompt: "What are connected passed pawns?", Answer: "Adjacent passed pawns", Reward: 10},
	{ID: 107, Prompt: "What is a king's shelter of pawns called?", Answer: "Pawn shield", Reward: 10},
	{ID: 108, Prompt: "Name the mate using queen sacrifice then smothered mate.", Answer: "Levien/Philidor combination", Aliases: []string{"queen sac smothered"}, Reward: 15},
	{ID: 109, Prompt: "Name the mate pattern where queen mates on back rank with rook block.", Answer: "Back rank mate", Reward: 10},
	{ID: 110, Prompt: "What is an outpost?", Answer: "Strong square for knight or piece, hard to chase away", Reward: 10},
	{ID: 111, Prompt: "What is a hole in pawn structure?", Answer: "Weak square that cannot be defended by pawns", Reward: 10},
	{ID: 112, Prompt: "Name the tactic: line-clearance for another piece.", Answer: "Clearance", Reward: 10},
	{ID: 113, Prompt: "Name the tactic: 'windmill' with rook/bishop discovering checks.", Answer: "Windmill", Reward: 15},
	{ID: 114, Prompt: "What is the most valuable piece?", Answer: "King", Reward: 5},
	{ID: 115, Prompt: "What is a draw by insufficient mating material?", Answer: "Insufficient material", Reward: 10},
	{ID: 116, Prompt: "What is perpetual pursuit?", Answer: "Repeated threats to force draw", Reward: 10},
	{ID: 117, Prompt: "What is a hook pawn?", Answer: "Pawn used to create pawn storms", Reward: 10},
	{ID: 118, Prompt: "What is a minority attack?", Answer: "Using fewer pawns to attack more pawns", Reward: 10},
	{ID: 119, Prompt: "What is the strongest square for knights usually?", Answer: "Outposts in center", Reward: 10},
	{ID: 120, Prompt: "What is the rook on the seventh rank called?", Answer: "Rook on seventh", Aliases: []string{"rook on 7th"}, Reward: 10},
	{ID: 121, Prompt: "Name the endgame: rook vs pawn with king support is often drawn if pawn is rook pawn.", Answer: "Rook vs rook pawn draw", Reward: 15},
	{ID: 122, Prompt: "What is opposition diagonal called for bishops?", Answer: "Opposite-colored bishops", Reward: 10},
	{ID: 123, Prompt: "Opposite-colored bishops endgames often result in what?", Answer: "Draw", Reward: 10},
	{ID: 124, Prompt: "Same-colored bishops endgames are often decided by what?", Answer: "Pawn breaks and zugzwang", Reward: 15},
	{ID: 125, Prompt: "Name the opening line: 1. e4 e5 2. Nf3 Nc6 3. d4.", Answer: "Scotch Game", Aliases: []string{"scotch"}, Reward: 15},
	{ID: 126, Prompt: "Name the defense: 1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 a6.", Answer: "Najdorf", Aliases: []string{"sicilian najdorf"}, Reward: 15},
	{ID: 127, Prompt: "Name the line: 1. e4 e5 2. Nf3 Nc6 3. Bb5 a6.", Answer: "Ruy Lopez, Morphy Defense", Aliases: []string{"morphy defense"}, Reward: 15},
	{ID: 128, Prompt: "Name the gambit: 1. d4 d5 2. c4 e6 3. Nc3 c5.", Answer: "Tarrasch Defense", Aliases: []string{"tarrasch"}, Reward: 15},
	{ID: 129, Prompt: "Name the opening: 1. d4 Nf6 2. c4 e6 3. Nc3 Bb4.", Answer: "Nimzo-Indian Defense", Reward: 15},
	{ID: 130, Prompt: "Name the opening: 1. d4 Nf6 2. c4 g6 3. g3.", Answer: "Fianchetto King's Indian", Aliases: []string{"kings indian fianchetto"}, Reward: 15},
	{ID: 131, Prompt: "Name the pawn structure with pawns on c3/d4/e3.", Answer: "Stonewall-like (London) structure", Aliases: []string{"stonewall", "london"}, Reward: 10},
	{ID: 132, Prompt: "Name the tactic: overload a defender to win material.", Answer: "Overloading", Reward: 10},
	{ID: 133, Prompt: "Name the tactic: prevent castling by pinning f-pawn or attacking g-pawn.", Answer: "King safety attack", Reward: 10},
	{ID: 134, Prompt: "What is the main goal of the opening?", Answer: "Development and king safety", Reward: 10},
	{ID: 135, Prompt: "What is the main goal of the middlegame?", Answer: "Create weaknesses and attack", Reward: 10},
	{ID: 136, Prompt: "What is the main goal of the endgame?", Answer: "Push passed pawns and activate king", Reward: 10},
	{ID: 137, Prompt: "What is the term for exchanging queens early?", Answer: "Early queen trade", Aliases: []string{"queen trade"}, Reward: 10},
	{ID: 138, Prompt: "What is the best piece to blockade passed pawns?", Answer: "Knight", Reward: 10},
	{ID: 139, Prompt: "What is the tactic theme when king is trapped by own pieces?", Answer: "Self-mate motifs", Reward: 10},
	{ID: 140, Prompt: "What is the term for a pawn storm?", Answer: "Pawn storm", Reward: 10},
	{ID: 141, Prompt: "What is the Dutch Leningrad setup's key pawn?", Answer: "f-pawn", Aliases: []string{"leningrad key pawn"}, Reward: 10},
	{ID: 142, Prompt: "Which opening features the Botvinnik setup c4, e4, d3, Nc3, g3?", Answer: "English, Botvinnik System", Aliases: []string{"botvinnik"}, Reward: 15},
	{ID: 143, Prompt: "Which defense uses ...c5 against 1.d4?", Answer: "Benoni Defense", Aliases: []string{"benoni"}, Reward: 15},
	{ID: 144, Prompt: "Which defense uses ...b5 early against 1.d4 c4?", Answer: "Budapest Gambit", Aliases: []string{"budapest"}, Reward: 15},
	{ID: 145, Prompt: "Which system is known for solid pawn chain d5-e6?", Answer: "French Defense", Reward: 10},
	{ID: 146, Prompt: "Name the tactic: removing the defender with a capture.", Answer: "Remove the defender", Aliases: []string{"deflection"}, Reward: 10},
	{ID: 147, Prompt: "Name the classic endgame study composer: Troitsky.", Answer: "Alexey Troitsky", Aliases: []string{"troitsky"}, Reward: 10},
	{ID: 148, Prompt: "What is the Troitsky line about?", Answer: "Knight vs two connected passed pawns", Reward: 15},
	{ID: 149, Prompt: "What is an exchange up?", Answer: "Having a rook for a minor piece", Reward: 10},
	{ID: 150, Prompt: "What is a material imbalance?", Answer: "Unequal material values", Reward: 10},
	{ID: 151, Prompt: "What is fortress?", Answer: "Defensive setup preventing progress", Reward: 15},
	{ID: 152, Prompt: "What is the term for pre-move in online chess?", Answer: "Premove", Reward: 5},
	{ID: 153, Prompt: "What is castling condition about moving king or rook previously?", Answer: "Cannot castle if moved before", Reward: 15},
	{ID: 154, Prompt: "What is the term for pin against the king?", Answer: "Absolute pin", Reward: 10},
	{ID: 155, Prompt: "What is the term for pin against a queen or rook?", Answer: "Relative pin", Reward: 10},
	{ID: 156, Prompt: "What is time trouble called?", Answer: "Zeitnot", Reward: 10},
	{ID: 157, Prompt: "What is the move repetition draw rule?", Answer: "Threefold repetition", Reward: 15},
	{ID: 158, Prompt: "Name the defense: 1. d4 Nf6 2. c4 e5.", Answer: "Budapest Gambit", Reward: 15},
	{ID: 159, Prompt: "Name the defense: 1. d4 c5.", Answer: "Benoni Defense", Reward: 15},
	{ID: 160, Prompt: "Name the defense: 1. d4 d6 2. c4 e5.", Answer: "Old Indian Defense", Aliases: []string{"old indian"}, Reward: 15},
	{ID: 161, Prompt: "Name the opening: 1. e4 Nf6.", Answer: "Alekhine Defense", Aliases: []string{"alekhine"}, Reward: 15},
	{ID: 162, Prompt: "Name the opening: 1. e4 Nc6.", Answer: "Nimzowitsch Defense", Aliases: []string{"nimzowitsch"}, Reward: 15},
	{ID: 163, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. d3.", Answer: "King's Pawn, Old Italian", Aliases: []string{"old italian"}, Reward: 15},
	{ID: 164, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nf6.", Answer: "Petrov Defense", Aliases: []string{"russian"}, Reward: 15},
	{ID: 165, Prompt: "Name the opening: 1. e4 e5 2. Qh5.", Answer: "Parham Attack", Aliases: []string{"parham"}, Reward: 10},
	{ID: 166, Prompt: "Name the opening: 1. e4 e5 2. Qf3.", Answer: "Wayward Queen Attack", Aliases: []string{"wayward queen"}, Reward: 10},
	{ID: 167, Prompt: "Name the opening: 1. e4 d5 2. exd5 Qxd5 3. Nc3.", Answer: "Scandinavian Defense, Mieses-Kotrc", Aliases: []string{"scandi"}, Reward: 15},
	{ID: 168, Prompt: "Name the opening: 1. d4 d5 2. c4 dxc4.", Answer: "Queen's Gambit Accepted", Aliases: []string{"qga"}, Reward: 15},
	{ID: 169, Prompt: "Name the opening: 1. d4 d5 2. c4 e5.", Answer: "Albin Counter-Gambit", Aliases: []string{"albin"}, Reward: 15},
	{ID: 170, Prompt: "Name the opening: 1. e4 c5 2. Nf3 Nc6 3. Bb5.", Answer: "Sicilian Rossolimo", Aliases: []string{"rossolimo"}, Reward: 15},
	{ID: 171, Prompt: "Name the opening: 1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 g6.", Answer: "Sicilian Dragon", Aliases: []string{"dragon"}, Reward: 15},
	{ID: 172, Prompt: "Name the opening: 1. e4 c5 2. Nf3 e6 3. d4 cxd4 4. Nxd4 a6.", Answer: "Sicilian Kan", Aliases: []string{"kan"}, Reward: 15},
	{ID: 173, Prompt: "Name the opening: 1. e4 c5 2. Nf3 e6 3. d4 cxd4 4. Nxd4 Nc6.", Answer: "Sicilian Taimanov", Aliases: []string{"taimanov"}, Reward: 15},
	{ID: 174, Prompt: "Name the opening: 1. e4 c5 2. Nf3 d6 3. c3.", Answer: "Sicilian Alapin", Aliases: []string{"alapin"}, Reward: 15},
	{ID: 175, Prompt: "Name the tactic: attack along the long diagonal a1-h8 or h1-a8.", Answer: "Diagonal attack", Reward: 10},
	{ID: 176, Prompt: "Name the tactic: mating net around the king.", Answer: "Mating net", Reward: 10},
	{ID: 177, Prompt: "Name the tactic: push passed pawn supported by pieces.", Answer: "Pawn push", Reward: 10},
	{ID: 178, Prompt: "Name the tactic: simplify to winning endgame.", Answer: "Simplification", Reward: 10},
	{ID: 179, Prompt: "Name the tactic: exchange into favorable structure.", Answer: "Structural transformation", Reward: 10},
	{ID: 180, Prompt: "What is the best piece in open positions?", Answer: "Bishop", Reward: 10},
	{ID: 181, Prompt: "What is the best piece in closed positions?", Answer: "Knight", Reward: 10},
	{ID: 182, Prompt: "What is the main principle of two weaknesses?", Answer: "Create a second front to overload defense", Reward: 15},
	{ID: 183, Prompt: "Name the defense system with pawns on d6/e5/f7 and g6.", Answer: "Pirc/Modern setup", Reward: 10},
	{ID: 184, Prompt: "Name the sacrifice on b5/b4 to open files in Sicilian.", Answer: "Exchange sacrifice on c3", Aliases: []string{"xc3 sac"}, Reward: 15},
	{ID: 185, Prompt: "Name the tactic: capturing on h7/h2 to drag king out.", Answer: "Bishop sacrifice on h7/h2", Reward: 15},
	{ID: 186, Prompt: "Name the endgame: king and pawn vs king key technique.", Answer: "Opposition and square of the pawn", Reward: 15},
	{ID: 187, Prompt: "Name the ending: rook and bishop vs rook is usually a draw.", Answer: "Rook and bishop vs rook draw", Reward: 15},
	{ID: 188, Prompt: "Name the ending: rook and knight vs rook drawish?", Answer: "Rook and knight vs rook often draw", Reward: 15},
	{ID: 189, Prompt: "Name the ending: queen vs rook with poor king placement is winning for queen.", Answer: "Queen vs rook win", Reward: 15},
	{ID: 190, Prompt: "Name the tactic: interference on defensive line.", Answer: "Interference", Reward: 10},
	{ID: 191, Prompt: "Name the tactic: sacrifice to remove king safety.", Answer: "King hunt", Reward: 10},
	{ID: 192, Prompt: "Name the tactic: clearing a file for rook penetration.", Answer: "File clearance", Reward: 10},
	{ID: 193, Prompt: "Name the tactic: delaying recapture to play a stronger move.", Answer: "Intermediate move", Aliases: []string{"zwischenzug"}, Reward: 15},
	{ID: 194, Prompt: "Name the tactic: mate threats that force a win of material.", Answer: "Mating threats", Reward: 10},
	{ID: 195, Prompt: "Name the tactic: pin and win a piece.", Answer: "Pin tactic", Reward: 10},
	{ID: 196, Prompt: "Name the tactic: skewer to win major piece.", Answer: "Skewer tactic", Reward: 10},
	{ID: 197, Prompt: "Name the tactic: discovered attack on queen.", Answer: "Discovered attack", Reward: 10},
	{ID: 198, Prompt: "Name the tactic: fork with knight on queen and rook.", Answer: "Knight fork", Reward: 10},
	{ID: 199, Prompt: "Name the tactic: back rank mating pattern", Answer: "Back rank mate", Reward: 10},
	{ID: 200, Prompt: "Name the opening strategy: put pressure on d4 in Sicilian.", Answer: "Pressure on d4", Reward: 10},
	{ID: 201, Prompt: "Name the opening strategy: advance e5 in French to gain space.", Answer: "Space advantage", Reward: 10},
	{ID: 202, Prompt: "Name the opening strategy: break with c4 in Queen's Gambit structures.", Answer: "c4 break", Reward: 10},
	{ID: 203, Prompt: "Name the player known for King's Indian mastery.", Answer: "Garry Kasparov", Aliases: []string{"kasparov"}, Reward: 10},
	{ID: 204, Prompt: "Name the player known as the Wizard of Riga.", Answer: "Mikhail Tal", Aliases: []string{"tal"}, Reward: 10},
	{ID: 205, Prompt: "Name the player known for deep strategy and endgames.", Answer: "Jose Raul Capablanca", Aliases: []string{"capablanca"}, Reward: 10},
	{ID: 206, Prompt: "Name the player who authored 'How to Reassess Your Chess'.", Answer: "Jeremy Silman", Aliases: []string{"silman"}, Reward: 10},
	{ID: 207, Prompt: "Name the tournament: Candidates determines challenger for world title.", Answer: "Candidates Tournament", Aliases: []string{"candidates"}, Reward: 10},
	{ID: 208, Prompt: "Name the defense with black playing ...e5 against 1. d4.", Answer: "Budapest Gambit", Reward: 15},
	{ID: 209, Prompt: "Name the defense with black playing ...c5 vs 1. d4.", Answer: "Benoni Defense", Reward: 15},
	{ID: 210, Prompt: "Name the defense featuring ...b6 and ...Bb7 vs 1. e4.", Answer: "Owen's Defense", Reward: 15},
	{ID: 211, Prompt: "Name the endgame concept: 'rule of the square'.", Answer: "Square of the pawn", Reward: 15},
	{ID: 212, Prompt: "Name the basic mating pattern with two bishops.", Answer: "Two bishops mate", Reward: 15},
	{ID: 213, Prompt: "Name the principle: don't move pawns in front of your king unnecessarily.", Answer: "King safety", Reward: 10},
	{ID: 214, Prompt: "Name the principle: centralize your pieces.", Answer: "Centralization", Reward: 10},
	{ID: 215, Prompt: "Name the principle: avoid placing knights on the rim.", Answer: "Knight on the rim is dim", Reward: 10},
	{ID: 216, Prompt: "Name the principle: rooks belong behind passed pawns.", Answer: "Rooks behind passed pawns", Reward: 10},
	{ID: 217, Prompt: "Name the principle: opposite side castling often leads to pawn storms.", Answer: "Opposite side castling", Reward: 10},
	{ID: 218, Prompt: "Name the principle: don't grab poisoned pawns.", Answer: "Poisoned pawn", Reward: 10},
	{ID: 219, Prompt: "Name the Sicilian line with Qb6 hitting b2.", Answer: "Poisoned Pawn Najdorf", Aliases: []string{"poisoned pawn"}, Reward: 15},
	{ID: 220, Prompt: "Name the defense: 1. e4 d6 2. d4 Nf6 3. Nc3 g6.", Answer: "Pirc Defense", Reward: 15},
	{ID: 221, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bc4 Nf6.", Answer: "Two Knights Defense", Aliases: []string{"two knights"}, Reward: 15},
	{ID: 222, Prompt: "Name the trap in the Two Knights with Ng5 and Bxf7+.", Answer: "Fried Liver Attack", Aliases: []string{"fried liver"}, Reward: 15},
	{ID: 223, Prompt: "Name the declined version avoiding fried liver: 3...d6.", Answer: "Steinitz Defense", Aliases: []string{"steinitz"}, Reward: 10},
	{ID: 224, Prompt: "Name the tactic: attacking pinned knight on f6 in Sicilian.", Answer: "Pin and pressure", Reward: 10},
	{ID: 225, Prompt: "Name the tactic: queen sacrifice leading to forced mate.", Answer: "Queen sacrifice mate", Reward: 15},
	{ID: 226, Prompt: "Name the endgame: rook vs rook with extra pawn typically winning.", Answer: "Lucena position", Aliases: []string{"lucena"}, Reward: 15},
	{ID: 227, Prompt: "Name the defensive endgame method building a bridge.", Answer: "Lucena technique", Reward: 15},
	{ID: 228, Prompt: "Name the defensive endgame fortress against rook ending.", Answer: "Philidor position", Aliases: []string{"philidor position"}, Reward: 15},
	{ID: 229, Prompt: "Name the concept: second rank weakness around your king.", Answer: "Back rank weakness", Reward: 10},
	{ID: 230, Prompt: "Name the motif: knight outpost on d5 in Sicilian structures.", Answer: "d5 outpost", Reward: 10},
	{ID: 231, Prompt: "Name the motif: pawn break f4/f5 in King’s Indian.", Answer: "f-pawn break", Reward: 10},
	{ID: 232, Prompt: "Name the motif: c5 break in French to hit d4.", Answer: "c5 break", Reward: 10},
	{ID: 233, Prompt: "Name the motif: e4/e5 break to open center.", Answer: "Center break", Reward: 10},
	{ID: 234, Prompt: "Name the motif: long castle opposite side attack.", Answer: "Pawn storm", Reward: 10},
	{ID: 235, Prompt: "Name the motif: rook lift along the third rank.", Answer: "Rook lift", Reward: 10},
	{ID: 236, Prompt: "Name the motif: exchange sacrifice on c3 in Sicilian.", Answer: "Exchange sac on c3", Reward: 15},
	{ID: 237, Prompt: "Name the motif: bishop sacrifice on h7 for attack.", Answer: "Greek gift", Reward: 15},
	{ID: 238, Prompt: "Name the motif: knight sacrifice on f7/f2.", Answer: "Knight sacrifice on f7", Reward: 15},
	{ID: 239, Prompt: "Name the motif: rook sacrifice on h8/h1 for attack.", Answer: "Rook sacrifice", Reward: 15},
	{ID: 240, Prompt: "Name the motif: clearance of g-file for rook attack.", Answer: "g-file clearance", Reward: 10},
	{ID: 241, Prompt: "Name the motif: bishop on long diagonal b1-h7 attack.", Answer: "Long diagonal attack", Reward: 10},
	{ID: 242, Prompt: "Name the motif: queen and knight attack on h7/h2.", Answer: "Q+N attack", Reward: 10},
	{ID: 243, Prompt: "Name the motif: mating net with queen and rook.", Answer: "Queen-rook mate", Reward: 10},
	{ID: 244, Prompt: "Name the motif: mating net with rook rook (ladder).", Answer: "Ladder mate", Reward: 10},
	{ID: 245, Prompt: "Name the motif: discovered attack with bishop and rook.", Answer: "Discovered attack", Reward: 10},
	{ID: 246, Prompt: "Name the motif: remove the guard and win material.", Answer: "Deflection", Reward: 10},
	{ID: 247, Prompt: "Name the motif: trapping a piece with pawns.", Answer: "Trapping", Reward: 10},
	{ID: 248, Prompt: "Name the motif: overprotecting a strong square.", Answer: "Overprotection", Reward: 10},
	{ID: 249, Prompt: "Name the motif: break with b4/b5 in queenside structures.", Answer: "Queenside pawn break", Reward: 10},
	{ID: 250, Prompt: "Name the motif: break with f4/f5 in kingside structures.", Answer: "Kingside pawn break", Reward: 10},
	{ID: 251, Prompt: "Name the motif: rook on open file penetrates to 7th.", Answer: "Rook penetration", Reward: 10},
	{ID: 252, Prompt: "Name the motif: double rooks on a file.", Answer: "Rook doubling", Reward: 10},
	{ID: 253, Prompt: "Name the motif: queen-side minority attack in Carlsbad.", Answer: "Minority attack", Reward: 15},
	{ID: 254, Prompt: "Name the motif: bishop pair advantage.", Answer: "Bishop pair", Reward: 10},
	{ID: 255, Prompt: "Name the motif: knight vs bad bishop in closed positions.", Answer: "Good knight vs bad bishop", Reward: 10},
	{ID: 256, Prompt: "Name the motif: rook behind passed pawn.", Answer: "Rook behind passed pawn", Reward: 10},
	{ID: 257, Prompt: "Name the motif: king activity in endgame.", Answer: "Active king", Reward: 10},
	{ID: 258, Prompt: "Name the motif: triangulation to win tempo.", Answer: "Triangulation", Reward: 15},
	{ID: 259, Prompt: "Name the motif: zugzwang to force concessions.", Answer: "Zugzwang", Reward: 15},
	{ID: 260, Prompt: "Name the motif: perpetual check to draw.", Answer: "Perpetual check", Reward: 15},
	{ID: 261, Prompt: "Name the motif: stalemate resource to draw.", Answer: "Stalemate", Reward: 15},
	{ID: 262, Prompt: "Name the motif: fortress to hold a draw.", Answer: "Fortress", Reward: 15},
	{ID: 263, Prompt: "Name the motif: squeeze technique improving positions slowly.", Answer: "Positional squeeze", Reward: 10},
	{ID: 264, Prompt: "Name the motif: prophylaxis preventing opponent's ideas.", Answer: "Prophylaxis", Reward: 10},
	{ID: 265, Prompt: "Name the motif: interference to block lines.", Answer: "Interference", Reward: 10},
	{ID: 266, Prompt: "Name the motif: clearance sacrifice.", Answer: "Clearance sacrifice", Reward: 15},
	{ID: 267, Prompt: "Name the motif: attraction decoy.", Answer: "Decoy", Reward: 10},
	{ID: 268, Prompt: "Name the motif: double attack with queen.", Answer: "Double attack", Reward: 10},
	{ID: 269, Prompt: "Name the motif: skewer against king and rook.", Answer: "Skewer", Reward: 10},
	{ID: 270, Prompt: "Name the motif: pin against queen.", Answer: "Relative pin", Reward: 10},
	{ID: 271, Prompt: "Name the motif: absolute pin against king.", Answer: "Absolute pin", Reward: 10},
	{ID: 272, Prompt: "Name the motif: underpromotion to knight to avoid stalemate.", Answer: "Underpromotion", Reward: 15},
	{ID: 273, Prompt: "Name the motif: square of the pawn in king and pawn endings.", Answer: "Square of the pawn", Reward: 15},
	{ID: 274, Prompt: "Name the motif: building bridge in rook endings.", Answer: "Lucena", Reward: 15},
	{ID: 275, Prompt: "Name the motif: defensive technique against rook + pawn.", Answer: "Philidor", Reward: 15},
	{ID: 276, Prompt: "Name the motif: opposition in pawn endings.", Answer: "Opposition", Reward: 15},
	{ID: 277, Prompt: "Name the motif: queen sacrifice to force mate.", Answer: "Queen sac mate", Reward: 15},
	{ID: 278, Prompt: "Name the motif: bishop and knight mate technique.", Answer: "Bishop and knight mate", Reward: 15},
	{ID: 279, Prompt: "Name the motif: rook roller ladder mate.", Answer: "Rook roller", Reward: 10},
	{ID: 280, Prompt: "Name the motif: smothered mate pattern with knight.", Answer: "Smothered mate", Reward: 15},
	{ID: 281, Prompt: "Name the motif: mate net with Qh7+ or Qh2+", Answer: "Greek gift ideas", Reward: 15},
	{ID: 282, Prompt: "Name the opening: 1. d4 Nf6 2. c4 c5.", Answer: "Benoni/Benko ideas", Aliases: []string{"benko"}, Reward: 15},
	{ID: 283, Prompt: "Name the opening: 1. d4 Nf6 2. c4 c5 3. d5 b5.", Answer: "Benko Gambit", Aliases: []string{"benko"}, Reward: 15},
	{ID: 284, Prompt: "Name the opening: 1. d4 f5 2. c4 Nf6 3. g3.", Answer: "Dutch, Leningrad", Aliases: []string{"leningrad"}, Reward: 15},
	{ID: 285, Prompt: "Name the opening: 1. d4 d5 2. Bf4.", Answer: "London System", Reward: 15},
	{ID: 286, Prompt: "Name the opening: 1. d4 d5 2. c4 e6 3. Nc3 Be7.", Answer: "QGD Orthodox", Aliases: []string{"orthodox"}, Reward: 15},
	{ID: 287, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 Nf6.", Answer: "Berlin Defense", Aliases: []string{"berlin"}, Reward: 15},
	{ID: 288, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 d6.", Answer: "Steinitz Defense (Ruy)", Reward: 15},
	{ID: 289, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 g6.", Answer: "Ruy Lopez, Smyslov Defense", Aliases: []string{"smyslov"}, Reward: 15},
	{ID: 290, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 Bc5.", Answer: "Ruy Lopez, Classical", Aliases: []string{"classical"}, Reward: 15},
	{ID: 291, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6.", Answer: "Ruy Lopez, Closed", Aliases: []string{"closed ruy"}, Reward: 15},
	{ID: 292, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 b5.", Answer: "Ruy Lopez, Arkhangelsk", Aliases: []string{"arkhangelsk"}, Reward: 15},
	{ID: 293, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 Nd4.", Answer: "Ruy Lopez, Bird Defense", Aliases: []string{"bird defense"}, Reward: 15},
	{ID: 294, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bb5 f5.", Answer: "Ruy Lopez, Schliemann Defense", Aliases: []string{"schliemann"}, Reward: 15},
	{ID: 295, Prompt: "Name the opening: 1. e4 c5 2. c3.", Answer: "Sicilian Alapin", Reward: 15},
	{ID: 296, Prompt: "Name the opening: 1. e4 c5 2. Nc3.", Answer: "Sicilian Closed", Aliases: []string{"closed sicilian"}, Reward: 15},
	{ID: 297, Prompt: "Name the opening: 1. e4 c5 2. d4 cxd4 3. c3.", Answer: "Sicilian Smith-Morra", Aliases: []string{"smith morra"}, Reward: 15},
	{ID: 298, Prompt: "Name the opening: 1. e4 Nf6 2. e5 Nd5.", Answer: "Alekhine Defense, Modern", Reward: 15},
	{ID: 299, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5.", Answer: "Italian Game, Giuoco Piano", Aliases: []string{"giuoco piano"}, Reward: 15},
	{ID: 300, Prompt: "Name the opening: 1. e4 e5 2. Nf3 Nc6 3. Bc4 Nf6.", Answer: "Italian, Two Knights Defense", Aliases: []string{"two knights"}, Reward: 15},
}
