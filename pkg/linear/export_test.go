package linear

var CommonVote = commonVote
